package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceTemplate is a reusable named default for creating service jobs.
// It seeds a job's name and cost at creation time only; jobs do not stay
// consistent with the template afterwards.
type ServiceTemplate struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null;uniqueIndex:ux_service_templates_name" json:"name"`
	Description string       `gorm:"column:description" json:"description,omitempty"`
	DefaultCost float64      `gorm:"not null;default:0" json:"default_cost"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (ServiceTemplate) TableName() string { return "service_templates" }
