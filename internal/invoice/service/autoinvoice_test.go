package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpsgarage/servicecenter/internal/config"
	"github.com/rpsgarage/servicecenter/internal/invoice/domain"
	"github.com/rpsgarage/servicecenter/internal/invoice/repository"
	jobrepository "github.com/rpsgarage/servicecenter/internal/servicejob/repository"
)

func newAutoInvoicer(f *fixture) *AutoInvoicer {
	handler := NewAutoInvoicer(AutoInvoicerParams{
		DB:        f.db,
		Log:       zap.NewNop(),
		Invoices:  f.svc,
		Repo:      repository.Provide(),
		Jobs:      jobrepository.Provide(),
		Invoicing: config.NewStaticInvoicingConfigHolder(config.DefaultInvoicingConfig()),
	})
	return handler.(*AutoInvoicer)
}

func TestAutoInvoicerCreatesInvoice(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Engine overhaul", 200)
	invoicer := newAutoInvoicer(f)

	require.NoError(t, invoicer.HandleCompletion(context.Background(), f.request.ID))

	view, err := f.svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, view, 1)

	invoice := view[0]
	assert.Equal(t, 200.0, invoice.Subtotal)
	assert.Equal(t, 200.0, invoice.TotalAmount)
	assert.Equal(t, domain.PaymentStatusUnpaid, invoice.PaymentStatus)
	assert.Equal(t, config.DefaultInvoicingConfig().AutoNote, invoice.Notes)

	require.NotNil(t, invoice.DueAt)
	assert.Equal(t, f.clk.Now().AddDate(0, 0, config.DefaultInvoicingConfig().AutoDueDays), *invoice.DueAt)
}

func TestAutoInvoicerSkipsExistingInvoice(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Engine overhaul", 200)
	invoicer := newAutoInvoicer(f)

	_, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	require.NoError(t, invoicer.HandleCompletion(context.Background(), f.request.ID))

	views, err := f.svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestAutoInvoicerSkipsRequestWithoutJobs(t *testing.T) {
	f := newFixture(t)
	invoicer := newAutoInvoicer(f)

	require.NoError(t, invoicer.HandleCompletion(context.Background(), f.request.ID))

	views, err := f.svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, views)
}
