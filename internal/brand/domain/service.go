package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateBrandRequest struct {
	Name    string
	Country string
}

type UpdateBrandRequest struct {
	Name    string
	Country string
}

type Service interface {
	List(ctx context.Context) ([]Brand, error)
	GetByID(ctx context.Context, id snowflake.ID) (Brand, error)
	Create(ctx context.Context, req CreateBrandRequest) (Brand, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateBrandRequest) (Brand, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidName = errors.New("invalid_brand_name")
	ErrNameTaken   = errors.New("brand_name_taken")
	ErrNotFound    = errors.New("brand_not_found")
)
