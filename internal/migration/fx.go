package migration

import (
	"github.com/rpsgarage/servicecenter/internal/config"
	"github.com/rpsgarage/servicecenter/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := Run(conn); err != nil {
			return err
		}
		return seed.EnsureAdminUser(conn, cfg)
	}),
)
