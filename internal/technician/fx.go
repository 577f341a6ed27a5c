package technician

import (
	"github.com/rpsgarage/servicecenter/internal/technician/repository"
	"github.com/rpsgarage/servicecenter/internal/technician/service"
	"go.uber.org/fx"
)

var Module = fx.Module("technician.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
