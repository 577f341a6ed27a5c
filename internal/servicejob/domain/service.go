package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// CreateServiceJobRequest carries Cost as a pointer so an absent cost
// can be seeded from the template, distinct from an explicit zero.
type CreateServiceJobRequest struct {
	JobName          string
	Description      string
	Cost             *float64
	ServiceRequestID snowflake.ID
	TechnicianID     *snowflake.ID
	TemplateID       *snowflake.ID
}

type UpdateServiceJobRequest struct {
	JobName          string
	Description      string
	Cost             float64
	ServiceRequestID snowflake.ID
	TechnicianID     *snowflake.ID
}

type Service interface {
	List(ctx context.Context) ([]ServiceJob, error)
	GetByID(ctx context.Context, id snowflake.ID) (ServiceJob, error)
	ListByServiceRequest(ctx context.Context, requestID snowflake.ID) ([]ServiceJob, error)
	Create(ctx context.Context, req CreateServiceJobRequest) (ServiceJob, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateServiceJobRequest) (ServiceJob, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidJobName = errors.New("invalid_job_name")
	ErrInvalidCost    = errors.New("invalid_job_cost")
	ErrNotFound       = errors.New("service_job_not_found")
)
