package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/technician/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("technician.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Technician, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Technician, error) {
	technician, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Technician{}, err
	}
	if technician == nil {
		return domain.Technician{}, domain.ErrNotFound
	}
	return *technician, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateTechnicianRequest) (domain.Technician, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return domain.Technician{}, domain.ErrInvalidFullName
	}

	now := s.clock.Now()
	technician := domain.Technician{
		ID:        s.genID.Generate(),
		FullName:  fullName,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &technician); err != nil {
		return domain.Technician{}, err
	}

	return technician, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateTechnicianRequest) (domain.Technician, error) {
	technician, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Technician{}, err
	}
	if technician == nil {
		return domain.Technician{}, domain.ErrNotFound
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return domain.Technician{}, domain.ErrInvalidFullName
	}

	technician.FullName = fullName
	technician.Email = strings.TrimSpace(req.Email)
	technician.Phone = strings.TrimSpace(req.Phone)
	technician.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, technician); err != nil {
		return domain.Technician{}, err
	}

	return *technician, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	technician, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if technician == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}
