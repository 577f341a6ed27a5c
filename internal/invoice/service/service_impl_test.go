package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/config"
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	customerrepository "github.com/rpsgarage/servicecenter/internal/customer/repository"
	"github.com/rpsgarage/servicecenter/internal/invoice/domain"
	"github.com/rpsgarage/servicecenter/internal/invoice/repository"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	jobrepository "github.com/rpsgarage/servicecenter/internal/servicejob/repository"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	requestrepository "github.com/rpsgarage/servicecenter/internal/servicerequest/repository"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	technicianrepository "github.com/rpsgarage/servicecenter/internal/technician/repository"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	vehiclerepository "github.com/rpsgarage/servicecenter/internal/vehicle/repository"
)

type fixture struct {
	db       *gorm.DB
	node     *snowflake.Node
	clk      *clock.FakeClock
	svc      *Service
	customer customerdomain.Customer
	vehicle  vehicledomain.Vehicle
	request  requestdomain.ServiceRequest
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&vehicledomain.Vehicle{},
		&techniciandomain.Technician{},
		&requestdomain.ServiceRequest{},
		&jobdomain.ServiceJob{},
		&domain.Invoice{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Clock:       clk,
		Repo:        repository.Provide(),
		Requests:    requestrepository.Provide(),
		Jobs:        jobrepository.Provide(),
		Vehicles:    vehiclerepository.Provide(),
		Customers:   customerrepository.Provide(),
		Technicians: technicianrepository.Provide(),
		Invoicing:   config.NewStaticInvoicingConfigHolder(config.DefaultInvoicingConfig()),
	})

	f := &fixture{db: db, node: node, clk: clk, svc: svc}
	f.customer = customerdomain.Customer{
		ID:       node.Generate(),
		FullName: "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "555-0101",
		Metadata: datatypes.JSONMap{},
	}
	require.NoError(t, db.Create(&f.customer).Error)

	f.vehicle = vehicledomain.Vehicle{
		ID:         node.Generate(),
		Number:     "B 1234 XYZ",
		Model:      "Avanza",
		Type:       "MPV",
		CustomerID: f.customer.ID,
	}
	require.NoError(t, db.Create(&f.vehicle).Error)

	f.request = requestdomain.ServiceRequest{
		ID:          node.Generate(),
		Description: "30k km service",
		Status:      requestdomain.StatusInProgress,
		VehicleID:   f.vehicle.ID,
	}
	require.NoError(t, db.Create(&f.request).Error)

	return f
}

func (f *fixture) addJob(t *testing.T, requestID snowflake.ID, name string, cost float64) jobdomain.ServiceJob {
	t.Helper()
	job := jobdomain.ServiceJob{
		ID:               f.node.Generate(),
		JobName:          name,
		Cost:             cost,
		ServiceRequestID: requestID,
	}
	require.NoError(t, f.db.Create(&job).Error)
	return job
}

func TestCreateInvoice(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Oil change", 100)
	f.addJob(t, f.request.ID, "Brake pads", 50)

	view, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		ServiceRequestID: f.request.ID,
		TaxPercent:       10,
		DiscountPercent:  5,
		DueDays:          14,
		Notes:            "cash only",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^INV-\d+-[0-9A-F]{4}$`, view.Number)
	assert.Equal(t, 150.0, view.Subtotal)
	assert.Equal(t, 15.0, view.TaxAmount)
	assert.Equal(t, 7.5, view.DiscountAmount)
	assert.Equal(t, 157.5, view.TotalAmount)
	assert.Equal(t, domain.PaymentStatusUnpaid, view.PaymentStatus)
	assert.Equal(t, "cash only", view.Notes)

	// Denormalized references come from the request's vehicle.
	assert.Equal(t, f.customer.ID, view.CustomerID)
	assert.Equal(t, "Jane Smith", view.CustomerName)
	assert.Equal(t, f.vehicle.ID, view.VehicleID)
	assert.Equal(t, "B 1234 XYZ", view.VehicleNumber)
	assert.Equal(t, "30k km service", view.ServiceRequestDescription)

	require.NotNil(t, view.DueAt)
	assert.Equal(t, f.clk.Now().AddDate(0, 0, 14), *view.DueAt)

	assert.Len(t, view.Jobs, 2)
	assert.Equal(t, "Oil change", view.Jobs[0].JobName)
}

func TestCreateInvoiceConflict(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Oil change", 100)

	_, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateInvoiceNoJobs(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		ServiceRequestID: f.request.ID,
		TaxPercent:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, view.Subtotal)
	assert.Equal(t, 0.0, view.TotalAmount)
	assert.Empty(t, view.Jobs)
}

func TestCreateInvoiceNoDueDate(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)
	assert.Nil(t, view.DueAt)
}

func TestCreateInvoiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID, TaxPercent: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxPercent)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID, DiscountPercent: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID, DueDays: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidDueDays)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID, PaymentStatus: "PENDING"})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentStatus)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{ServiceRequestID: f.node.Generate()})
	assert.ErrorIs(t, err, requestdomain.ErrNotFound)
}

func TestUpdateInvoiceRecomputes(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Oil change", 200)

	created, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		ServiceRequestID: f.request.ID,
		TaxPercent:       10,
		PaymentStatus:    string(domain.PaymentStatusPaid),
		DueDays:          7,
	})
	require.NoError(t, err)
	require.NotNil(t, created.DueAt)

	updated, err := f.svc.Update(context.Background(), created.ID, domain.UpdateInvoiceRequest{
		TaxPercent:      20,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	// Amounts are rebuilt from the stored subtotal, not stacked.
	assert.Equal(t, 200.0, updated.Subtotal)
	assert.Equal(t, 40.0, updated.TaxAmount)
	assert.Equal(t, 20.0, updated.DiscountAmount)
	assert.Equal(t, 220.0, updated.TotalAmount)

	// Empty payment status keeps the stored value, zero due days keeps
	// the stored due date.
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
	require.NotNil(t, updated.DueAt)
	assert.Equal(t, *created.DueAt, *updated.DueAt)
}

func TestUpdateInvoiceRetarget(t *testing.T) {
	f := newFixture(t)
	f.addJob(t, f.request.ID, "Oil change", 100)

	created, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	// Second customer, vehicle and request with its own jobs.
	other := customerdomain.Customer{
		ID:       f.node.Generate(),
		FullName: "Bob Jones",
		Metadata: datatypes.JSONMap{},
	}
	require.NoError(t, f.db.Create(&other).Error)

	otherVehicle := vehicledomain.Vehicle{
		ID:         f.node.Generate(),
		Number:     "D 5678 ABC",
		CustomerID: other.ID,
	}
	require.NoError(t, f.db.Create(&otherVehicle).Error)

	otherRequest := requestdomain.ServiceRequest{
		ID:        f.node.Generate(),
		Status:    requestdomain.StatusOpen,
		VehicleID: otherVehicle.ID,
	}
	require.NoError(t, f.db.Create(&otherRequest).Error)
	f.addJob(t, otherRequest.ID, "Tire rotation", 75)
	f.addJob(t, otherRequest.ID, "Alignment", 25)

	updated, err := f.svc.Update(context.Background(), created.ID, domain.UpdateInvoiceRequest{
		ServiceRequestID: &otherRequest.ID,
		TaxPercent:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, otherRequest.ID, updated.ServiceRequestID)
	assert.Equal(t, other.ID, updated.CustomerID)
	assert.Equal(t, otherVehicle.ID, updated.VehicleID)
	assert.Equal(t, 100.0, updated.Subtotal)
	assert.Equal(t, 110.0, updated.TotalAmount)
	assert.Len(t, updated.Jobs, 2)
}

func TestDeleteInvoice(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))

	_, err = f.svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoiceByNumber(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	found, err := f.svc.GetByNumber(context.Background(), created.Number)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = f.svc.GetByNumber(context.Background(), "INV-0000000-ZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInvoicesFilters(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	byCustomer, err := f.svc.List(context.Background(), domain.ListFilter{CustomerID: &f.customer.ID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, created.ID, byCustomer[0].ID)

	unpaid, err := f.svc.List(context.Background(), domain.ListFilter{PaymentStatus: "UNPAID"})
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)

	// Unknown payment status matches nothing rather than failing.
	unknown, err := f.svc.List(context.Background(), domain.ListFilter{PaymentStatus: "VOID"})
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestInvoiceJobViewTechnicianName(t *testing.T) {
	f := newFixture(t)

	technician := techniciandomain.Technician{
		ID:       f.node.Generate(),
		FullName: "Eko Wijaya",
	}
	require.NoError(t, f.db.Create(&technician).Error)

	job := f.addJob(t, f.request.ID, "Diagnostics", 80)
	require.NoError(t, f.db.Model(&jobdomain.ServiceJob{}).
		Where("id = ?", job.ID).
		Update("technician_id", technician.ID).Error)

	view, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{ServiceRequestID: f.request.ID})
	require.NoError(t, err)

	require.Len(t, view.Jobs, 1)
	assert.Equal(t, "Eko Wijaya", view.Jobs[0].TechnicianName)
}
