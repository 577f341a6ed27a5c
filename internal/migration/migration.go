// Package migration creates the schema on startup so the service is
// usable out of the box for local and self-hosted environments.
package migration

import (
	"errors"

	authdomain "github.com/rpsgarage/servicecenter/internal/auth/domain"
	branddomain "github.com/rpsgarage/servicecenter/internal/brand/domain"
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	invoicedomain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	templatedomain "github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"gorm.io/gorm"
)

// Run migrates every entity table. AutoMigrate is additive, so repeated
// startups are safe.
func Run(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}
	return conn.AutoMigrate(
		&customerdomain.Customer{},
		&branddomain.Brand{},
		&vehicledomain.Vehicle{},
		&techniciandomain.Technician{},
		&templatedomain.ServiceTemplate{},
		&requestdomain.ServiceRequest{},
		&jobdomain.ServiceJob{},
		&invoicedomain.Invoice{},
		&authdomain.User{},
		&authdomain.Session{},
	)
}
