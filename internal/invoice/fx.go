package invoice

import (
	"github.com/rpsgarage/servicecenter/internal/invoice/repository"
	"github.com/rpsgarage/servicecenter/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(service.AsService),
	fx.Provide(service.NewAutoInvoicer),
)
