package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, template *ServiceTemplate) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ServiceTemplate, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]ServiceTemplate, error)
	Save(ctx context.Context, db *gorm.DB, template *ServiceTemplate) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
