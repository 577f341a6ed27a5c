package customer

import (
	"github.com/rpsgarage/servicecenter/internal/customer/repository"
	"github.com/rpsgarage/servicecenter/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
