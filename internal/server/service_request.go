package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
)

type serviceRequestRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	VehicleID   string `json:"vehicle_id"`
}

func (s *Server) ListServiceRequests(c *gin.Context) {
	resp, err := s.requestSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetServiceRequestByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.requestSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListServiceRequestJobs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if _, err := s.requestSvc.GetByID(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.jobSvc.ListByServiceRequest(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateServiceRequest(c *gin.Context) {
	var req serviceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	vehicleID, err := snowflake.ParseString(req.VehicleID)
	if err != nil {
		AbortWithError(c, newValidationError("vehicle_id", "invalid_vehicle_id", "invalid identifier"))
		return
	}

	resp, err := s.requestSvc.Create(c.Request.Context(), requestdomain.CreateServiceRequestRequest{
		Description: req.Description,
		Status:      req.Status,
		VehicleID:   vehicleID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateServiceRequest(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req serviceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	vehicleID, err := snowflake.ParseString(req.VehicleID)
	if err != nil {
		AbortWithError(c, newValidationError("vehicle_id", "invalid_vehicle_id", "invalid identifier"))
		return
	}

	resp, err := s.requestSvc.Update(c.Request.Context(), id, requestdomain.UpdateServiceRequestRequest{
		Description: req.Description,
		Status:      req.Status,
		VehicleID:   vehicleID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteServiceRequest(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.requestSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
