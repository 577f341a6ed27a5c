// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role is the coarse access level of a user account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User represents a system user account.
type User struct {
	ID                  snowflake.ID `gorm:"primaryKey" json:"id"`
	Username            string       `gorm:"type:text;not null;uniqueIndex:ux_users_username" json:"username"`
	Email               string       `gorm:"column:email;uniqueIndex:ux_users_email" json:"email"`
	FullName            string       `gorm:"column:full_name" json:"full_name,omitempty"`
	PasswordHash        string       `gorm:"type:text;not null" json:"-"`
	Role                Role         `gorm:"type:text;not null;default:'USER'" json:"role"`
	Enabled             bool         `gorm:"not null;default:true" json:"enabled"`
	LastPasswordChanged *time.Time   `gorm:"column:last_password_changed" json:"-"`
	CreatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session represents a persisted login session. Only the SHA-256 hash
// of the token is stored; the raw token lives in the client cookie.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"column:user_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }

// Principal is the authenticated caller resolved from a session token.
// It is passed explicitly to anything that needs the current user,
// never held in global state.
type Principal struct {
	User    *User
	Session *Session
}
