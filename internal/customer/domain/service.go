package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateCustomerRequest struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

type UpdateCustomerRequest struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id snowflake.ID) (Customer, error)
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidFullName = errors.New("invalid_full_name")
	ErrNotFound        = errors.New("customer_not_found")
)
