package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vehicle *Vehicle) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Vehicle, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Vehicle, error)
	FindByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]Vehicle, error)
	Save(ctx context.Context, db *gorm.DB, vehicle *Vehicle) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
