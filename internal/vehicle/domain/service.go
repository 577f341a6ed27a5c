package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateVehicleRequest struct {
	Number     string
	Model      string
	Type       string
	CustomerID snowflake.ID
	BrandID    *snowflake.ID
}

type UpdateVehicleRequest struct {
	Number     string
	Model      string
	Type       string
	CustomerID snowflake.ID
	BrandID    *snowflake.ID
}

type Service interface {
	List(ctx context.Context) ([]Vehicle, error)
	GetByID(ctx context.Context, id snowflake.ID) (Vehicle, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]Vehicle, error)
	Create(ctx context.Context, req CreateVehicleRequest) (Vehicle, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateVehicleRequest) (Vehicle, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidNumber = errors.New("invalid_vehicle_number")
	ErrNumberTaken   = errors.New("vehicle_number_taken")
	ErrNotFound      = errors.New("vehicle_not_found")
)
