package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
)

type vehicleRequest struct {
	Number     string `json:"number"`
	Model      string `json:"model"`
	Type       string `json:"type"`
	CustomerID string `json:"customer_id"`
	BrandID    string `json:"brand_id"`
}

func (v vehicleRequest) parse() (snowflake.ID, *snowflake.ID, error) {
	customerID, err := snowflake.ParseString(v.CustomerID)
	if err != nil {
		return 0, nil, newValidationError("customer_id", "invalid_customer_id", "invalid identifier")
	}
	brandID, err := optionalID(v.BrandID)
	if err != nil {
		return 0, nil, newValidationError("brand_id", "invalid_brand_id", "invalid identifier")
	}
	return customerID, brandID, nil
}

func (s *Server) ListVehicles(c *gin.Context) {
	resp, err := s.vehicleSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVehicleByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.vehicleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customerID, brandID, err := req.parse()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.vehicleSvc.Create(c.Request.Context(), vehicledomain.CreateVehicleRequest{
		Number:     req.Number,
		Model:      req.Model,
		Type:       req.Type,
		CustomerID: customerID,
		BrandID:    brandID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVehicle(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customerID, brandID, err := req.parse()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.vehicleSvc.Update(c.Request.Context(), id, vehicledomain.UpdateVehicleRequest{
		Number:     req.Number,
		Model:      req.Model,
		Type:       req.Type,
		CustomerID: customerID,
		BrandID:    brandID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVehicle(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.vehicleSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
