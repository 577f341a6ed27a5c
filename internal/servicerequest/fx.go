package servicerequest

import (
	"github.com/rpsgarage/servicecenter/internal/servicerequest/repository"
	"github.com/rpsgarage/servicecenter/internal/servicerequest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("servicerequest.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
