package servicetemplate

import (
	"github.com/rpsgarage/servicecenter/internal/servicetemplate/repository"
	"github.com/rpsgarage/servicecenter/internal/servicetemplate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("servicetemplate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
