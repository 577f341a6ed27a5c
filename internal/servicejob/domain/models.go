package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceJob is one billable unit of work performed under a service
// request. TemplateID records which template seeded the job, if any;
// the seeded fields are free to drift afterwards.
type ServiceJob struct {
	ID               snowflake.ID  `gorm:"primaryKey" json:"id"`
	JobName          string        `gorm:"not null" json:"job_name"`
	Description      string        `gorm:"column:description" json:"description,omitempty"`
	Cost             float64       `gorm:"not null" json:"cost"`
	ServiceRequestID snowflake.ID  `gorm:"not null;index:ix_service_jobs_request" json:"service_request_id"`
	TechnicianID     *snowflake.ID `gorm:"column:technician_id" json:"technician_id,omitempty"`
	TemplateID       *snowflake.ID `gorm:"column:template_id" json:"template_id,omitempty"`
	CreatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (ServiceJob) TableName() string { return "service_jobs" }
