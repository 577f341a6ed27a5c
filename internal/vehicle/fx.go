package vehicle

import (
	"github.com/rpsgarage/servicecenter/internal/vehicle/repository"
	"github.com/rpsgarage/servicecenter/internal/vehicle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vehicle.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
