package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/config"
	"github.com/rpsgarage/servicecenter/internal/invoice/domain"
	"github.com/rpsgarage/servicecenter/internal/observability/metrics"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AutoInvoicerParams struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Invoices  *Service
	Repo      domain.Repository
	Jobs      jobdomain.Repository
	Invoicing *config.InvoicingConfigHolder
	Metrics   *metrics.Metrics `optional:"true"`
}

// AutoInvoicer creates an invoice when a service request completes.
// It runs after the status change is committed; nothing it does can
// fail or roll back that update.
type AutoInvoicer struct {
	db        *gorm.DB
	log       *zap.Logger
	invoices  *Service
	repo      domain.Repository
	jobs      jobdomain.Repository
	invoicing *config.InvoicingConfigHolder
	metrics   *metrics.Metrics
}

func NewAutoInvoicer(p AutoInvoicerParams) requestdomain.CompletionHandler {
	return &AutoInvoicer{
		db:        p.DB,
		log:       p.Log.Named("invoice.autoinvoicer"),
		invoices:  p.Invoices,
		repo:      p.Repo,
		jobs:      p.Jobs,
		invoicing: p.Invoicing,
		metrics:   p.Metrics,
	}
}

func (a *AutoInvoicer) HandleCompletion(ctx context.Context, requestID snowflake.ID) error {
	existing, err := a.repo.FindByServiceRequest(ctx, a.db, requestID)
	if err != nil {
		a.metrics.RecordAutoInvoice("failed")
		return err
	}
	if existing != nil {
		a.metrics.RecordAutoInvoice("skipped_existing")
		a.log.Debug("invoice already exists, skipping",
			zap.String("service_request_id", requestID.String()))
		return nil
	}

	jobs, err := a.jobs.FindByServiceRequest(ctx, a.db, requestID)
	if err != nil {
		a.metrics.RecordAutoInvoice("failed")
		return err
	}
	if len(jobs) == 0 {
		a.metrics.RecordAutoInvoice("skipped_no_jobs")
		a.log.Debug("no jobs on request, skipping",
			zap.String("service_request_id", requestID.String()))
		return nil
	}

	cfg := a.invoicing.Get()
	view, err := a.invoices.create(ctx, domain.CreateInvoiceRequest{
		ServiceRequestID: requestID,
		TaxPercent:       0,
		DiscountPercent:  0,
		PaymentStatus:    string(domain.PaymentStatusUnpaid),
		Notes:            cfg.AutoNote,
		DueDays:          cfg.AutoDueDays,
	}, originAuto)
	if err != nil {
		// A concurrent create may have slipped in between the
		// existence check and the insert; that race is accepted.
		a.metrics.RecordAutoInvoice("failed")
		return err
	}

	a.metrics.RecordAutoInvoice("created")
	a.log.Info("auto-generated invoice",
		zap.String("invoice_number", view.Number),
		zap.String("service_request_id", requestID.String()),
	)
	return nil
}
