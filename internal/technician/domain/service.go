package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateTechnicianRequest struct {
	FullName string
	Email    string
	Phone    string
}

type UpdateTechnicianRequest struct {
	FullName string
	Email    string
	Phone    string
}

type Service interface {
	List(ctx context.Context) ([]Technician, error)
	GetByID(ctx context.Context, id snowflake.ID) (Technician, error)
	Create(ctx context.Context, req CreateTechnicianRequest) (Technician, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateTechnicianRequest) (Technician, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidFullName = errors.New("invalid_technician_name")
	ErrNotFound        = errors.New("technician_not_found")
)
