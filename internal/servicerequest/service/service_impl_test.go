package service

import (
	"context"
	"errors"
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
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	"github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	"github.com/rpsgarage/servicecenter/internal/servicerequest/repository"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	vehiclerepository "github.com/rpsgarage/servicecenter/internal/vehicle/repository"
)

type handlerStub struct {
	calls int
	err   error
}

func (h *handlerStub) HandleCompletion(ctx context.Context, requestID snowflake.ID) error {
	h.calls++
	return h.err
}

type requestFixture struct {
	db      *gorm.DB
	node    *snowflake.Node
	svc     domain.Service
	handler *handlerStub
	vehicle vehicledomain.Vehicle
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&vehicledomain.Vehicle{},
		&domain.ServiceRequest{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	handler := &handlerStub{}
	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		Repo:     repository.Provide(),
		Vehicles: vehiclerepository.Provide(),
		Handler:  handler,
	})

	customer := customerdomain.Customer{
		ID:       node.Generate(),
		FullName: "Jane Smith",
		Metadata: datatypes.JSONMap{},
	}
	require.NoError(t, db.Create(&customer).Error)

	vehicle := vehicledomain.Vehicle{
		ID:         node.Generate(),
		Number:     "B 1234 XYZ",
		CustomerID: customer.ID,
	}
	require.NoError(t, db.Create(&vehicle).Error)

	return &requestFixture{db: db, node: node, svc: svc, handler: handler, vehicle: vehicle}
}

func TestCreateServiceRequestDefaultsToOpen(t *testing.T) {
	f := newRequestFixture(t)

	request, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		Description: "engine noise",
		VehicleID:   f.vehicle.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, request.Status)
}

func TestCreateServiceRequestRejectsUnknownStatus(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		Status:    "DONE",
		VehicleID: f.vehicle.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateServiceRequestUnknownVehicle(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		VehicleID: f.node.Generate(),
	})
	assert.ErrorIs(t, err, vehicledomain.ErrNotFound)
}

func TestUpdateDispatchesCompletionOnce(t *testing.T) {
	f := newRequestFixture(t)

	request, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		Status:    string(domain.StatusInProgress),
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), request.ID, domain.UpdateServiceRequestRequest{
		Status:    string(domain.StatusCompleted),
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, 1, f.handler.calls)

	// Re-saving an already completed request does not fire again.
	_, err = f.svc.Update(context.Background(), request.ID, domain.UpdateServiceRequestRequest{
		Status:    string(domain.StatusCompleted),
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.handler.calls)
}

func TestUpdateNonCompletionTransitionsDoNotDispatch(t *testing.T) {
	f := newRequestFixture(t)

	request, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)

	for _, status := range []domain.Status{domain.StatusInProgress, domain.StatusCancelled, domain.StatusOpen} {
		_, err = f.svc.Update(context.Background(), request.ID, domain.UpdateServiceRequestRequest{
			Status:    string(status),
			VehicleID: f.vehicle.ID,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, f.handler.calls)
}

func TestUpdateSwallowsHandlerError(t *testing.T) {
	f := newRequestFixture(t)
	f.handler.err = errors.New("downstream failure")

	request, err := f.svc.Create(context.Background(), domain.CreateServiceRequestRequest{
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), request.ID, domain.UpdateServiceRequestRequest{
		Status:    string(domain.StatusCompleted),
		VehicleID: f.vehicle.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, 1, f.handler.calls)

	// The committed status change survives the handler failure.
	stored, err := f.svc.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func TestUpdateUnknownRequest(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.Update(context.Background(), f.node.Generate(), domain.UpdateServiceRequestRequest{
		Status:    string(domain.StatusCompleted),
		VehicleID: f.vehicle.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, f.handler.calls)
}
