package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Technician performs service jobs.
type Technician struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	FullName  string       `gorm:"not null" json:"full_name"`
	Email     string       `gorm:"column:email" json:"email,omitempty"`
	Phone     string       `gorm:"column:phone" json:"phone,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Technician) TableName() string { return "technicians" }
