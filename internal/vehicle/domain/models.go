package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Vehicle belongs to exactly one customer and optionally one brand.
type Vehicle struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	Number     string        `gorm:"not null;uniqueIndex:ux_vehicles_number" json:"number"`
	Model      string        `gorm:"column:model" json:"model,omitempty"`
	Type       string        `gorm:"column:type" json:"type,omitempty"`
	CustomerID snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	BrandID    *snowflake.ID `gorm:"index" json:"brand_id,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Vehicle) TableName() string { return "vehicles" }
