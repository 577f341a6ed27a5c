package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/config"
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	"github.com/rpsgarage/servicecenter/internal/invoice/domain"
	"github.com/rpsgarage/servicecenter/internal/observability/metrics"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"github.com/rpsgarage/servicecenter/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	originManual = "manual"
	originAuto   = "auto"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        domain.Repository
	Requests    requestdomain.Repository
	Jobs        jobdomain.Repository
	Vehicles    vehicledomain.Repository
	Customers   customerdomain.Repository
	Technicians techniciandomain.Repository
	Invoicing   *config.InvoicingConfigHolder
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	requests    requestdomain.Repository
	jobs        jobdomain.Repository
	vehicles    vehicledomain.Repository
	customers   customerdomain.Repository
	technicians techniciandomain.Repository
	invoicing   *config.InvoicingConfigHolder
	metrics     *metrics.Metrics
}

func New(p Params) *Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("invoice.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		requests:    p.Requests,
		jobs:        p.Jobs,
		vehicles:    p.Vehicles,
		customers:   p.Customers,
		technicians: p.Technicians,
		invoicing:   p.Invoicing,
		metrics:     p.Metrics,
	}
}

// AsService exposes the concrete implementation under the domain
// interface for the rest of the graph.
func AsService(s *Service) domain.Service { return s }

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.InvoiceView, error) {
	var (
		invoices []domain.Invoice
		err      error
	)
	switch {
	case filter.CustomerID != nil:
		invoices, err = s.repo.FindByCustomer(ctx, s.db, *filter.CustomerID)
	case filter.PaymentStatus != "":
		invoices, err = s.repo.FindByPaymentStatus(ctx, s.db, filter.PaymentStatus)
	default:
		invoices, err = s.repo.FindAll(ctx, s.db)
	}
	if err != nil {
		return nil, err
	}

	views := make([]domain.InvoiceView, 0, len(invoices))
	for i := range invoices {
		view, err := s.assembleView(ctx, &invoices[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.InvoiceView, error) {
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if invoice == nil {
		return domain.InvoiceView{}, domain.ErrNotFound
	}
	return s.assembleView(ctx, invoice)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (domain.InvoiceView, error) {
	invoice, err := s.repo.FindByNumber(ctx, s.db, strings.TrimSpace(number))
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if invoice == nil {
		return domain.InvoiceView{}, domain.ErrNotFound
	}
	return s.assembleView(ctx, invoice)
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.InvoiceView, error) {
	return s.create(ctx, req, originManual)
}

func (s *Service) create(ctx context.Context, req domain.CreateInvoiceRequest, origin string) (domain.InvoiceView, error) {
	if err := validateAmounts(req.TaxPercent, req.DiscountPercent, req.DueDays); err != nil {
		return domain.InvoiceView{}, err
	}

	paymentStatus := domain.PaymentStatusUnpaid
	if req.PaymentStatus != "" {
		parsed, err := domain.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			return domain.InvoiceView{}, err
		}
		paymentStatus = parsed
	}

	request, err := s.requests.FindByID(ctx, s.db, req.ServiceRequestID)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if request == nil {
		return domain.InvoiceView{}, requestdomain.ErrNotFound
	}

	existing, err := s.repo.FindByServiceRequest(ctx, s.db, request.ID)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if existing != nil {
		return domain.InvoiceView{}, domain.ErrAlreadyExists
	}

	totals, err := s.computeTotals(ctx, request.ID, req.TaxPercent, req.DiscountPercent)
	if err != nil {
		return domain.InvoiceView{}, err
	}

	customerID, err := s.denormalize(ctx, request.VehicleID)
	if err != nil {
		return domain.InvoiceView{}, err
	}

	now := s.clock.Now()
	invoice := domain.Invoice{
		ID:               s.genID.Generate(),
		Number:           domain.NewNumber(s.invoicing.Get().NumberPrefix, now),
		ServiceRequestID: request.ID,
		CustomerID:       customerID,
		VehicleID:        request.VehicleID,
		Subtotal:         totals.Subtotal,
		TaxAmount:        totals.TaxAmount,
		DiscountAmount:   totals.DiscountAmount,
		TotalAmount:      totals.TotalAmount,
		PaymentStatus:    paymentStatus,
		Notes:            strings.TrimSpace(req.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.DueDays > 0 {
		due := now.AddDate(0, 0, req.DueDays)
		invoice.DueAt = &due
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.InvoiceView{}, domain.ErrNumberTaken
		}
		return domain.InvoiceView{}, err
	}

	s.metrics.RecordInvoiceCreated(origin)
	s.log.Info("invoice created",
		zap.String("invoice_number", invoice.Number),
		zap.String("service_request_id", invoice.ServiceRequestID.String()),
		zap.String("origin", origin),
	)

	return s.assembleView(ctx, &invoice)
}

// Update always rebuilds the derived amounts from the supplied
// percentages. Retargeting to another service request recomputes the
// subtotal from that request's jobs and re-denormalizes the customer
// and vehicle; it deliberately does not re-check whether the new
// target already carries an invoice.
func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateInvoiceRequest) (domain.InvoiceView, error) {
	if err := validateAmounts(req.TaxPercent, req.DiscountPercent, req.DueDays); err != nil {
		return domain.InvoiceView{}, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if invoice == nil {
		return domain.InvoiceView{}, domain.ErrNotFound
	}

	subtotal := invoice.Subtotal
	if req.ServiceRequestID != nil && *req.ServiceRequestID != invoice.ServiceRequestID {
		request, err := s.requests.FindByID(ctx, s.db, *req.ServiceRequestID)
		if err != nil {
			return domain.InvoiceView{}, err
		}
		if request == nil {
			return domain.InvoiceView{}, requestdomain.ErrNotFound
		}

		totals, err := s.computeTotals(ctx, request.ID, 0, 0)
		if err != nil {
			return domain.InvoiceView{}, err
		}
		subtotal = totals.Subtotal

		customerID, err := s.denormalize(ctx, request.VehicleID)
		if err != nil {
			return domain.InvoiceView{}, err
		}

		invoice.ServiceRequestID = request.ID
		invoice.VehicleID = request.VehicleID
		invoice.CustomerID = customerID
	}

	totals := domain.Derive(subtotal, req.TaxPercent, req.DiscountPercent)
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmount = totals.TaxAmount
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TotalAmount = totals.TotalAmount

	if req.PaymentStatus != "" {
		parsed, err := domain.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			return domain.InvoiceView{}, err
		}
		invoice.PaymentStatus = parsed
	}

	invoice.Notes = strings.TrimSpace(req.Notes)

	now := s.clock.Now()
	if req.DueDays > 0 {
		due := now.AddDate(0, 0, req.DueDays)
		invoice.DueAt = &due
	}
	invoice.UpdatedAt = now

	if err := s.repo.Save(ctx, s.db, invoice); err != nil {
		return domain.InvoiceView{}, err
	}

	return s.assembleView(ctx, invoice)
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func validateAmounts(taxPercent, discountPercent float64, dueDays int) error {
	if taxPercent < 0 {
		return domain.ErrInvalidTaxPercent
	}
	if discountPercent < 0 {
		return domain.ErrInvalidDiscount
	}
	if dueDays < 0 {
		return domain.ErrInvalidDueDays
	}
	return nil
}

// computeTotals derives the invoice amounts from the request's current
// job list. The subtotal is never cached independently of this step.
func (s *Service) computeTotals(ctx context.Context, requestID snowflake.ID, taxPercent, discountPercent float64) (domain.Totals, error) {
	jobs, err := s.jobs.FindByServiceRequest(ctx, s.db, requestID)
	if err != nil {
		return domain.Totals{}, err
	}
	costs := make([]float64, 0, len(jobs))
	for _, job := range jobs {
		costs = append(costs, job.Cost)
	}
	return domain.Calculate(costs, taxPercent, discountPercent), nil
}

func (s *Service) denormalize(ctx context.Context, vehicleID snowflake.ID) (snowflake.ID, error) {
	vehicle, err := s.vehicles.FindByID(ctx, s.db, vehicleID)
	if err != nil {
		return 0, err
	}
	if vehicle == nil {
		return 0, vehicledomain.ErrNotFound
	}
	return vehicle.CustomerID, nil
}

func (s *Service) assembleView(ctx context.Context, invoice *domain.Invoice) (domain.InvoiceView, error) {
	view := domain.InvoiceView{
		ID:               invoice.ID,
		Number:           invoice.Number,
		ServiceRequestID: invoice.ServiceRequestID,
		CustomerID:       invoice.CustomerID,
		VehicleID:        invoice.VehicleID,
		Subtotal:         invoice.Subtotal,
		TaxAmount:        invoice.TaxAmount,
		DiscountAmount:   invoice.DiscountAmount,
		TotalAmount:      invoice.TotalAmount,
		PaymentStatus:    invoice.PaymentStatus,
		Notes:            invoice.Notes,
		CreatedAt:        invoice.CreatedAt,
		DueAt:            invoice.DueAt,
		Jobs:             []domain.JobView{},
	}

	request, err := s.requests.FindByID(ctx, s.db, invoice.ServiceRequestID)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if request != nil {
		view.ServiceRequestDescription = request.Description
	}

	customer, err := s.customers.FindByID(ctx, s.db, invoice.CustomerID)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if customer != nil {
		view.CustomerName = customer.FullName
		view.CustomerEmail = customer.Email
		view.CustomerPhone = customer.Phone
	}

	vehicle, err := s.vehicles.FindByID(ctx, s.db, invoice.VehicleID)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if vehicle != nil {
		view.VehicleNumber = vehicle.Number
		view.VehicleModel = vehicle.Model
		view.VehicleType = vehicle.Type
	}

	jobs, err := s.jobs.FindByServiceRequest(ctx, s.db, invoice.ServiceRequestID)
	if err != nil {
		return domain.InvoiceView{}, err
	}

	technicianNames := map[snowflake.ID]string{}
	for _, job := range jobs {
		jobView := domain.JobView{
			ID:           job.ID,
			JobName:      job.JobName,
			Description:  job.Description,
			Cost:         job.Cost,
			TechnicianID: job.TechnicianID,
		}
		if job.TechnicianID != nil {
			name, ok := technicianNames[*job.TechnicianID]
			if !ok {
				technician, err := s.technicians.FindByID(ctx, s.db, *job.TechnicianID)
				if err != nil {
					return domain.InvoiceView{}, err
				}
				if technician != nil {
					name = technician.FullName
				}
				technicianNames[*job.TechnicianID] = name
			}
			jobView.TechnicianName = name
		}
		view.Jobs = append(view.Jobs, jobView)
	}

	return view, nil
}
