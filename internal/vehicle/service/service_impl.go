package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	branddomain "github.com/rpsgarage/servicecenter/internal/brand/domain"
	"github.com/rpsgarage/servicecenter/internal/clock"
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	"github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"github.com/rpsgarage/servicecenter/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Customers customerdomain.Repository
	Brands    branddomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	customers customerdomain.Repository
	brands    branddomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("vehicle.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		customers: p.Customers,
		brands:    p.Brands,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if vehicle == nil {
		return domain.Vehicle{}, domain.ErrNotFound
	}
	return *vehicle, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]domain.Vehicle, error) {
	return s.repo.FindByCustomer(ctx, s.db, customerID)
}

func (s *Service) Create(ctx context.Context, req domain.CreateVehicleRequest) (domain.Vehicle, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return domain.Vehicle{}, domain.ErrInvalidNumber
	}

	if err := s.resolveReferences(ctx, req.CustomerID, req.BrandID); err != nil {
		return domain.Vehicle{}, err
	}

	now := s.clock.Now()
	vehicle := domain.Vehicle{
		ID:         s.genID.Generate(),
		Number:     number,
		Model:      strings.TrimSpace(req.Model),
		Type:       strings.TrimSpace(req.Type),
		CustomerID: req.CustomerID,
		BrandID:    req.BrandID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &vehicle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vehicle{}, domain.ErrNumberTaken
		}
		return domain.Vehicle{}, err
	}

	return vehicle, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateVehicleRequest) (domain.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if vehicle == nil {
		return domain.Vehicle{}, domain.ErrNotFound
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		return domain.Vehicle{}, domain.ErrInvalidNumber
	}

	if err := s.resolveReferences(ctx, req.CustomerID, req.BrandID); err != nil {
		return domain.Vehicle{}, err
	}

	vehicle.Number = number
	vehicle.Model = strings.TrimSpace(req.Model)
	vehicle.Type = strings.TrimSpace(req.Type)
	vehicle.CustomerID = req.CustomerID
	vehicle.BrandID = req.BrandID
	vehicle.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, vehicle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vehicle{}, domain.ErrNumberTaken
		}
		return domain.Vehicle{}, err
	}

	return *vehicle, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	vehicle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) resolveReferences(ctx context.Context, customerID snowflake.ID, brandID *snowflake.ID) error {
	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return customerdomain.ErrNotFound
	}

	if brandID != nil {
		brand, err := s.brands.FindByID(ctx, s.db, *brandID)
		if err != nil {
			return err
		}
		if brand == nil {
			return branddomain.ErrNotFound
		}
	}
	return nil
}
