// Package seed bootstraps the default admin account on first startup.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/rpsgarage/servicecenter/internal/auth/domain"
	"github.com/rpsgarage/servicecenter/internal/auth/password"
	"github.com/rpsgarage/servicecenter/internal/config"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the bootstrap admin when the users table is
// empty. Without a configured bootstrap password nothing is seeded, so
// fresh databases never ship a well-known credential.
func EnsureAdminUser(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if strings.TrimSpace(cfg.BootstrapAdminPassword) == "" {
		return nil
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := password.Hash(cfg.BootstrapAdminPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		admin := authdomain.User{
			ID:           node.Generate(),
			Username:     strings.ToLower(strings.TrimSpace(cfg.BootstrapAdminUsername)),
			Email:        strings.ToLower(strings.TrimSpace(cfg.BootstrapAdminEmail)),
			FullName:     "Administrator",
			PasswordHash: hashed,
			Role:         authdomain.RoleAdmin,
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.Create(&admin).Error
	})
}
