package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, job *ServiceJob) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ServiceJob, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]ServiceJob, error)
	FindByServiceRequest(ctx context.Context, db *gorm.DB, requestID snowflake.ID) ([]ServiceJob, error)
	Save(ctx context.Context, db *gorm.DB, job *ServiceJob) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
