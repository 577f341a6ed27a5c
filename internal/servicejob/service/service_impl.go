package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	templatedomain "github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        domain.Repository
	Requests    requestdomain.Repository
	Technicians techniciandomain.Repository
	Templates   templatedomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	requests    requestdomain.Repository
	technicians techniciandomain.Repository
	templates   templatedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("servicejob.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		requests:    p.Requests,
		technicians: p.Technicians,
		templates:   p.Templates,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceJob, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.ServiceJob, error) {
	job, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceJob{}, err
	}
	if job == nil {
		return domain.ServiceJob{}, domain.ErrNotFound
	}
	return *job, nil
}

func (s *Service) ListByServiceRequest(ctx context.Context, requestID snowflake.ID) ([]domain.ServiceJob, error) {
	return s.repo.FindByServiceRequest(ctx, s.db, requestID)
}

// Create seeds an absent job name or cost from the template, when one
// is referenced. The seeded values are a one-time default; later edits
// to the template or the job do not track each other.
func (s *Service) Create(ctx context.Context, req domain.CreateServiceJobRequest) (domain.ServiceJob, error) {
	if err := s.resolveRequest(ctx, req.ServiceRequestID); err != nil {
		return domain.ServiceJob{}, err
	}
	if err := s.resolveTechnician(ctx, req.TechnicianID); err != nil {
		return domain.ServiceJob{}, err
	}

	jobName := strings.TrimSpace(req.JobName)
	cost := req.Cost

	if req.TemplateID != nil {
		template, err := s.templates.FindByID(ctx, s.db, *req.TemplateID)
		if err != nil {
			return domain.ServiceJob{}, err
		}
		if template == nil {
			return domain.ServiceJob{}, templatedomain.ErrNotFound
		}
		if jobName == "" {
			jobName = template.Name
		}
		if cost == nil {
			cost = &template.DefaultCost
		}
	}

	if jobName == "" {
		return domain.ServiceJob{}, domain.ErrInvalidJobName
	}
	if cost == nil || *cost < 0 {
		return domain.ServiceJob{}, domain.ErrInvalidCost
	}

	now := s.clock.Now()
	job := domain.ServiceJob{
		ID:               s.genID.Generate(),
		JobName:          jobName,
		Description:      strings.TrimSpace(req.Description),
		Cost:             *cost,
		ServiceRequestID: req.ServiceRequestID,
		TechnicianID:     req.TechnicianID,
		TemplateID:       req.TemplateID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, &job); err != nil {
		return domain.ServiceJob{}, err
	}

	return job, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateServiceJobRequest) (domain.ServiceJob, error) {
	job, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ServiceJob{}, err
	}
	if job == nil {
		return domain.ServiceJob{}, domain.ErrNotFound
	}

	jobName := strings.TrimSpace(req.JobName)
	if jobName == "" {
		return domain.ServiceJob{}, domain.ErrInvalidJobName
	}
	if req.Cost < 0 {
		return domain.ServiceJob{}, domain.ErrInvalidCost
	}

	if err := s.resolveRequest(ctx, req.ServiceRequestID); err != nil {
		return domain.ServiceJob{}, err
	}
	if err := s.resolveTechnician(ctx, req.TechnicianID); err != nil {
		return domain.ServiceJob{}, err
	}

	job.JobName = jobName
	job.Description = strings.TrimSpace(req.Description)
	job.Cost = req.Cost
	job.ServiceRequestID = req.ServiceRequestID
	job.TechnicianID = req.TechnicianID
	job.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, job); err != nil {
		return domain.ServiceJob{}, err
	}

	return *job, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	job, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) resolveRequest(ctx context.Context, requestID snowflake.ID) error {
	request, err := s.requests.FindByID(ctx, s.db, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return requestdomain.ErrNotFound
	}
	return nil
}

func (s *Service) resolveTechnician(ctx context.Context, technicianID *snowflake.ID) error {
	if technicianID == nil {
		return nil
	}
	technician, err := s.technicians.FindByID(ctx, s.db, *technicianID)
	if err != nil {
		return err
	}
	if technician == nil {
		return techniciandomain.ErrNotFound
	}
	return nil
}
