package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceRequest is a repair ticket opened against one vehicle. Jobs
// performed under it live in their own table keyed by ServiceRequestID.
type ServiceRequest struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Description string       `gorm:"column:description" json:"description,omitempty"`
	Status      Status       `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	VehicleID   snowflake.ID `gorm:"not null;index:ix_service_requests_vehicle" json:"vehicle_id"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (ServiceRequest) TableName() string { return "service_requests" }
