package brand

import (
	"github.com/rpsgarage/servicecenter/internal/brand/repository"
	"github.com/rpsgarage/servicecenter/internal/brand/service"
	"go.uber.org/fx"
)

var Module = fx.Module("brand.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
