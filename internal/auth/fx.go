package auth

import (
	"github.com/rpsgarage/servicecenter/internal/auth/repository"
	"github.com/rpsgarage/servicecenter/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
