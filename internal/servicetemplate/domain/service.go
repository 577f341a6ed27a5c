package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateServiceTemplateRequest struct {
	Name        string
	Description string
	DefaultCost float64
	Active      *bool
}

type UpdateServiceTemplateRequest struct {
	Name        string
	Description string
	DefaultCost float64
	Active      *bool
}

type Service interface {
	List(ctx context.Context) ([]ServiceTemplate, error)
	GetByID(ctx context.Context, id snowflake.ID) (ServiceTemplate, error)
	Create(ctx context.Context, req CreateServiceTemplateRequest) (ServiceTemplate, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateServiceTemplateRequest) (ServiceTemplate, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidName = errors.New("invalid_template_name")
	ErrInvalidCost = errors.New("invalid_template_cost")
	ErrNameTaken   = errors.New("template_name_taken")
	ErrNotFound    = errors.New("template_not_found")
)
