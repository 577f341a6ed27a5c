package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, technician *Technician) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Technician, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Technician, error)
	Save(ctx context.Context, db *gorm.DB, technician *Technician) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
