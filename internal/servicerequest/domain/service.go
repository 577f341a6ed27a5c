package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateServiceRequestRequest struct {
	Description string
	Status      string
	VehicleID   snowflake.ID
}

type UpdateServiceRequestRequest struct {
	Description string
	Status      string
	VehicleID   snowflake.ID
}

type Service interface {
	List(ctx context.Context) ([]ServiceRequest, error)
	GetByID(ctx context.Context, id snowflake.ID) (ServiceRequest, error)
	Create(ctx context.Context, req CreateServiceRequestRequest) (ServiceRequest, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateServiceRequestRequest) (ServiceRequest, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

// CompletionHandler reacts to a service request entering COMPLETED. It
// runs after the status change is persisted; its error is logged by the
// caller and never fails the update.
type CompletionHandler interface {
	HandleCompletion(ctx context.Context, requestID snowflake.ID) error
}

var (
	ErrInvalidStatus = errors.New("invalid_service_request_status")
	ErrNotFound      = errors.New("service_request_not_found")
)
