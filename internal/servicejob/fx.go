package servicejob

import (
	"github.com/rpsgarage/servicecenter/internal/servicejob/repository"
	"github.com/rpsgarage/servicecenter/internal/servicejob/service"
	"go.uber.org/fx"
)

var Module = fx.Module("servicejob.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
