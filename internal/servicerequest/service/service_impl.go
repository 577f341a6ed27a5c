package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/observability/logger"
	"github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Vehicles vehicledomain.Repository
	Handler  domain.CompletionHandler `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	vehicles vehicledomain.Repository
	handler  domain.CompletionHandler
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("servicerequest.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		vehicles: p.Vehicles,
		handler:  p.Handler,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceRequest, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.ServiceRequest, error) {
	request, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	if request == nil {
		return domain.ServiceRequest{}, domain.ErrNotFound
	}
	return *request, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateServiceRequestRequest) (domain.ServiceRequest, error) {
	status := domain.StatusOpen
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return domain.ServiceRequest{}, err
		}
		status = parsed
	}

	if err := s.resolveVehicle(ctx, req.VehicleID); err != nil {
		return domain.ServiceRequest{}, err
	}

	now := s.clock.Now()
	request := domain.ServiceRequest{
		ID:          s.genID.Generate(),
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		VehicleID:   req.VehicleID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &request); err != nil {
		return domain.ServiceRequest{}, err
	}

	return request, nil
}

// Update persists the new state first, then dispatches the completion
// event. A handler failure is logged and swallowed so the committed
// status change is never rolled back or surfaced as an error.
func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateServiceRequestRequest) (domain.ServiceRequest, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return domain.ServiceRequest{}, err
	}

	request, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	if request == nil {
		return domain.ServiceRequest{}, domain.ErrNotFound
	}

	if err := s.resolveVehicle(ctx, req.VehicleID); err != nil {
		return domain.ServiceRequest{}, err
	}

	oldStatus := request.Status
	request.Description = strings.TrimSpace(req.Description)
	request.Status = status
	request.VehicleID = req.VehicleID
	request.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, request); err != nil {
		return domain.ServiceRequest{}, err
	}

	if domain.Transition(oldStatus, status) == domain.EventCompleted && s.handler != nil {
		if err := s.handler.HandleCompletion(ctx, request.ID); err != nil {
			logger.WithContext(ctx, s.log).Warn("completion handler failed",
				zap.String("service_request_id", request.ID.String()),
				zap.Error(err),
			)
		}
	}

	return *request, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	request, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) resolveVehicle(ctx context.Context, vehicleID snowflake.ID) error {
	vehicle, err := s.vehicles.FindByID(ctx, s.db, vehicleID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return vehicledomain.ErrNotFound
	}
	return nil
}
