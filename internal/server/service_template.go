package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
)

type serviceTemplateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DefaultCost float64 `json:"default_cost"`
	Active      *bool   `json:"active"`
}

func (s *Server) ListServiceTemplates(c *gin.Context) {
	resp, err := s.templateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetServiceTemplateByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.templateSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateServiceTemplate(c *gin.Context) {
	var req serviceTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Create(c.Request.Context(), templatedomain.CreateServiceTemplateRequest{
		Name:        req.Name,
		Description: req.Description,
		DefaultCost: req.DefaultCost,
		Active:      req.Active,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateServiceTemplate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req serviceTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Update(c.Request.Context(), id, templatedomain.UpdateServiceTemplateRequest{
		Name:        req.Name,
		Description: req.Description,
		DefaultCost: req.DefaultCost,
		Active:      req.Active,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteServiceTemplate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.templateSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
