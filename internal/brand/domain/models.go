package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Brand is the vehicle make reference data.
type Brand struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex:ux_brands_name" json:"name"`
	Country   string       `gorm:"column:country" json:"country,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Brand) TableName() string { return "brands" }
