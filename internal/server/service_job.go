package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
)

type createServiceJobRequest struct {
	JobName          string   `json:"job_name"`
	Description      string   `json:"description"`
	Cost             *float64 `json:"cost"`
	ServiceRequestID string   `json:"service_request_id"`
	TechnicianID     string   `json:"technician_id"`
	TemplateID       string   `json:"template_id"`
}

type updateServiceJobRequest struct {
	JobName          string  `json:"job_name"`
	Description      string  `json:"description"`
	Cost             float64 `json:"cost"`
	ServiceRequestID string  `json:"service_request_id"`
	TechnicianID     string  `json:"technician_id"`
}

func (s *Server) ListServiceJobs(c *gin.Context) {
	resp, err := s.jobSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetServiceJobByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.jobSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateServiceJob(c *gin.Context) {
	var req createServiceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	requestID, err := snowflake.ParseString(req.ServiceRequestID)
	if err != nil {
		AbortWithError(c, newValidationError("service_request_id", "invalid_service_request_id", "invalid identifier"))
		return
	}
	technicianID, err := optionalID(req.TechnicianID)
	if err != nil {
		AbortWithError(c, newValidationError("technician_id", "invalid_technician_id", "invalid identifier"))
		return
	}
	templateID, err := optionalID(req.TemplateID)
	if err != nil {
		AbortWithError(c, newValidationError("template_id", "invalid_template_id", "invalid identifier"))
		return
	}

	resp, err := s.jobSvc.Create(c.Request.Context(), jobdomain.CreateServiceJobRequest{
		JobName:          req.JobName,
		Description:      req.Description,
		Cost:             req.Cost,
		ServiceRequestID: requestID,
		TechnicianID:     technicianID,
		TemplateID:       templateID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateServiceJob(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateServiceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	requestID, err := snowflake.ParseString(req.ServiceRequestID)
	if err != nil {
		AbortWithError(c, newValidationError("service_request_id", "invalid_service_request_id", "invalid identifier"))
		return
	}
	technicianID, err := optionalID(req.TechnicianID)
	if err != nil {
		AbortWithError(c, newValidationError("technician_id", "invalid_technician_id", "invalid identifier"))
		return
	}

	resp, err := s.jobSvc.Update(c.Request.Context(), id, jobdomain.UpdateServiceJobRequest{
		JobName:          req.JobName,
		Description:      req.Description,
		Cost:             req.Cost,
		ServiceRequestID: requestID,
		TechnicianID:     technicianID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteServiceJob(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.jobSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
