package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, request *ServiceRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ServiceRequest, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]ServiceRequest, error)
	Save(ctx context.Context, db *gorm.DB, request *ServiceRequest) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
