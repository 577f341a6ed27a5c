package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Customer owns one or more vehicles and is billed through invoices.
type Customer struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	FullName  string            `gorm:"not null" json:"full_name"`
	Email     string            `gorm:"column:email" json:"email,omitempty"`
	Phone     string            `gorm:"column:phone" json:"phone,omitempty"`
	Address   string            `gorm:"column:address" json:"address,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
