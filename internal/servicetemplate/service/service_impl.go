package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
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
		log:   p.Log.Named("servicetemplate.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceTemplate, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.ServiceTemplate, error) {
	template, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceTemplate{}, err
	}
	if template == nil {
		return domain.ServiceTemplate{}, domain.ErrNotFound
	}
	return *template, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateServiceTemplateRequest) (domain.ServiceTemplate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ServiceTemplate{}, domain.ErrInvalidName
	}
	if req.DefaultCost < 0 {
		return domain.ServiceTemplate{}, domain.ErrInvalidCost
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := s.clock.Now()
	template := domain.ServiceTemplate{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		DefaultCost: req.DefaultCost,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &template); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ServiceTemplate{}, domain.ErrNameTaken
		}
		return domain.ServiceTemplate{}, err
	}

	return template, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateServiceTemplateRequest) (domain.ServiceTemplate, error) {
	template, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceTemplate{}, err
	}
	if template == nil {
		return domain.ServiceTemplate{}, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ServiceTemplate{}, domain.ErrInvalidName
	}
	if req.DefaultCost < 0 {
		return domain.ServiceTemplate{}, domain.ErrInvalidCost
	}

	template.Name = name
	template.Description = strings.TrimSpace(req.Description)
	template.DefaultCost = req.DefaultCost
	if req.Active != nil {
		template.Active = *req.Active
	}
	template.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, template); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ServiceTemplate{}, domain.ErrNameTaken
		}
		return domain.ServiceTemplate{}, err
	}

	return *template, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	template, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if template == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}
