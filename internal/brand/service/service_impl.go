package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/brand/domain"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/pkg/db"
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
		log:   p.Log.Named("brand.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Brand, error) {
	brand, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Brand{}, err
	}
	if brand == nil {
		return domain.Brand{}, domain.ErrNotFound
	}
	return *brand, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateBrandRequest) (domain.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Brand{}, domain.ErrInvalidName
	}

	now := s.clock.Now()
	brand := domain.Brand{
		ID:        s.genID.Generate(),
		Name:      name,
		Country:   strings.TrimSpace(req.Country),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &brand); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Brand{}, domain.ErrNameTaken
		}
		return domain.Brand{}, err
	}

	return brand, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateBrandRequest) (domain.Brand, error) {
	brand, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Brand{}, err
	}
	if brand == nil {
		return domain.Brand{}, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Brand{}, domain.ErrInvalidName
	}

	brand.Name = name
	brand.Country = strings.TrimSpace(req.Country)
	brand.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, brand); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Brand{}, domain.ErrNameTaken
		}
		return domain.Brand{}, err
	}

	return *brand, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	brand, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}
