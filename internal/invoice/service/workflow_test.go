package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpsgarage/servicecenter/internal/config"
	"github.com/rpsgarage/servicecenter/internal/invoice/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	requestrepository "github.com/rpsgarage/servicecenter/internal/servicerequest/repository"
	requestservice "github.com/rpsgarage/servicecenter/internal/servicerequest/service"
	vehiclerepository "github.com/rpsgarage/servicecenter/internal/vehicle/repository"
)

// Completing a service request through the request service must produce
// an invoice without any further caller involvement.
func TestCompletionGeneratesInvoice(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Engine overhaul", 200)

	requests := requestservice.New(requestservice.Params{
		DB:       f.db,
		Log:      zap.NewNop(),
		GenID:    f.node,
		Clock:    f.clk,
		Repo:     requestrepository.Provide(),
		Vehicles: vehiclerepository.Provide(),
		Handler:  newAutoInvoicer(f),
	})

	updated, err := requests.Update(context.Background(), f.request.ID, requestdomain.UpdateServiceRequestRequest{
		Description: f.request.Description,
		Status:      string(requestdomain.StatusCompleted),
		VehicleID:   f.vehicle.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, requestdomain.StatusCompleted, updated.Status)

	views, err := f.svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	invoice := views[0]
	assert.Equal(t, f.request.ID, invoice.ServiceRequestID)
	assert.Equal(t, f.customer.ID, invoice.CustomerID)
	assert.Equal(t, 200.0, invoice.Subtotal)
	assert.Equal(t, 200.0, invoice.TotalAmount)
	assert.Equal(t, domain.PaymentStatusUnpaid, invoice.PaymentStatus)

	cfg := config.DefaultInvoicingConfig()
	assert.Equal(t, cfg.AutoNote, invoice.Notes)
	require.NotNil(t, invoice.DueAt)
	assert.Equal(t, f.clk.Now().AddDate(0, 0, cfg.AutoDueDays), *invoice.DueAt)

	// Completing again is a no-op for invoicing.
	_, err = requests.Update(context.Background(), f.request.ID, requestdomain.UpdateServiceRequestRequest{
		Description: f.request.Description,
		Status:      string(requestdomain.StatusCompleted),
		VehicleID:   f.vehicle.ID,
	})
	require.NoError(t, err)

	views, err = f.svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}
