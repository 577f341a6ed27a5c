package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*Invoice, error)
	FindByServiceRequest(ctx context.Context, db *gorm.DB, requestID snowflake.ID) (*Invoice, error)
	FindByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]Invoice, error)
	FindByPaymentStatus(ctx context.Context, db *gorm.DB, status string) ([]Invoice, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	Save(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
