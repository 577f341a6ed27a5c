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
	"gorm.io/gorm"

	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	"github.com/rpsgarage/servicecenter/internal/servicejob/repository"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	requestrepository "github.com/rpsgarage/servicecenter/internal/servicerequest/repository"
	templatedomain "github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
	templaterepository "github.com/rpsgarage/servicecenter/internal/servicetemplate/repository"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	technicianrepository "github.com/rpsgarage/servicecenter/internal/technician/repository"
)

type jobFixture struct {
	db       *gorm.DB
	node     *snowflake.Node
	svc      domain.Service
	request  requestdomain.ServiceRequest
	template templatedomain.ServiceTemplate
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&requestdomain.ServiceRequest{},
		&techniciandomain.Technician{},
		&templatedomain.ServiceTemplate{},
		&domain.ServiceJob{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Clock:       clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		Repo:        repository.Provide(),
		Requests:    requestrepository.Provide(),
		Technicians: technicianrepository.Provide(),
		Templates:   templaterepository.Provide(),
	})

	request := requestdomain.ServiceRequest{
		ID:        node.Generate(),
		Status:    requestdomain.StatusOpen,
		VehicleID: node.Generate(),
	}
	require.NoError(t, db.Create(&request).Error)

	template := templatedomain.ServiceTemplate{
		ID:          node.Generate(),
		Name:        "Oil change",
		DefaultCost: 45,
		Active:      true,
	}
	require.NoError(t, db.Create(&template).Error)

	return &jobFixture{db: db, node: node, svc: svc, request: request, template: template}
}

func TestCreateJobSeedsFromTemplate(t *testing.T) {
	f := newJobFixture(t)

	job, err := f.svc.Create(context.Background(), domain.CreateServiceJobRequest{
		ServiceRequestID: f.request.ID,
		TemplateID:       &f.template.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Oil change", job.JobName)
	assert.Equal(t, 45.0, job.Cost)
	require.NotNil(t, job.TemplateID)
	assert.Equal(t, f.template.ID, *job.TemplateID)
}

func TestCreateJobExplicitValuesWinOverTemplate(t *testing.T) {
	f := newJobFixture(t)

	cost := 0.0
	job, err := f.svc.Create(context.Background(), domain.CreateServiceJobRequest{
		JobName:          "Synthetic oil change",
		Cost:             &cost,
		ServiceRequestID: f.request.ID,
		TemplateID:       &f.template.ID,
	})
	require.NoError(t, err)

	// An explicit zero cost is not overridden by the template default.
	assert.Equal(t, "Synthetic oil change", job.JobName)
	assert.Equal(t, 0.0, job.Cost)
}

func TestCreateJobValidation(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	cost := 10.0

	_, err := f.svc.Create(ctx, domain.CreateServiceJobRequest{
		Cost:             &cost,
		ServiceRequestID: f.request.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidJobName)

	negative := -1.0
	_, err = f.svc.Create(ctx, domain.CreateServiceJobRequest{
		JobName:          "Brakes",
		Cost:             &negative,
		ServiceRequestID: f.request.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCost)

	_, err = f.svc.Create(ctx, domain.CreateServiceJobRequest{
		JobName:          "Brakes",
		Cost:             &cost,
		ServiceRequestID: f.request.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, domain.CreateServiceJobRequest{
		JobName:          "Brakes",
		Cost:             &cost,
		ServiceRequestID: f.node.Generate(),
	})
	assert.ErrorIs(t, err, requestdomain.ErrNotFound)

	unknownTechnician := f.node.Generate()
	_, err = f.svc.Create(ctx, domain.CreateServiceJobRequest{
		JobName:          "Brakes",
		Cost:             &cost,
		ServiceRequestID: f.request.ID,
		TechnicianID:     &unknownTechnician,
	})
	assert.ErrorIs(t, err, techniciandomain.ErrNotFound)

	unknownTemplate := f.node.Generate()
	_, err = f.svc.Create(ctx, domain.CreateServiceJobRequest{
		ServiceRequestID: f.request.ID,
		TemplateID:       &unknownTemplate,
	})
	assert.ErrorIs(t, err, templatedomain.ErrNotFound)
}

func TestUpdateJobDoesNotReseedFromTemplate(t *testing.T) {
	f := newJobFixture(t)

	job, err := f.svc.Create(context.Background(), domain.CreateServiceJobRequest{
		ServiceRequestID: f.request.ID,
		TemplateID:       &f.template.ID,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), job.ID, domain.UpdateServiceJobRequest{
		JobName:          "Oil change deluxe",
		Cost:             60,
		ServiceRequestID: f.request.ID,
	})
	require.NoError(t, err)

	// The seeded values drift freely after creation.
	assert.Equal(t, "Oil change deluxe", updated.JobName)
	assert.Equal(t, 60.0, updated.Cost)
	require.NotNil(t, updated.TemplateID)
	assert.Equal(t, f.template.ID, *updated.TemplateID)
}

func TestListByServiceRequestOrdersByCreation(t *testing.T) {
	f := newJobFixture(t)
	cost := 10.0

	for _, name := range []string{"first", "second", "third"} {
		_, err := f.svc.Create(context.Background(), domain.CreateServiceJobRequest{
			JobName:          name,
			Cost:             &cost,
			ServiceRequestID: f.request.ID,
		})
		require.NoError(t, err)
	}

	jobs, err := f.svc.ListByServiceRequest(context.Background(), f.request.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "first", jobs[0].JobName)
	assert.Equal(t, "third", jobs[2].JobName)
}
