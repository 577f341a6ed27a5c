package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpsgarage/servicecenter/internal/auth"
	authdomain "github.com/rpsgarage/servicecenter/internal/auth/domain"
	"github.com/rpsgarage/servicecenter/internal/auth/session"
	"github.com/rpsgarage/servicecenter/internal/brand"
	branddomain "github.com/rpsgarage/servicecenter/internal/brand/domain"
	"github.com/rpsgarage/servicecenter/internal/config"
	"github.com/rpsgarage/servicecenter/internal/customer"
	customerdomain "github.com/rpsgarage/servicecenter/internal/customer/domain"
	"github.com/rpsgarage/servicecenter/internal/invoice"
	invoicedomain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
	"github.com/rpsgarage/servicecenter/internal/invoice/render"
	"github.com/rpsgarage/servicecenter/internal/observability"
	obsmiddleware "github.com/rpsgarage/servicecenter/internal/observability/logger"
	obsmetrics "github.com/rpsgarage/servicecenter/internal/observability/metrics"
	obstracing "github.com/rpsgarage/servicecenter/internal/observability/tracing"
	"github.com/rpsgarage/servicecenter/internal/providers/pdf"
	"github.com/rpsgarage/servicecenter/internal/servicejob"
	jobdomain "github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	"github.com/rpsgarage/servicecenter/internal/servicerequest"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	"github.com/rpsgarage/servicecenter/internal/servicetemplate"
	templatedomain "github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
	"github.com/rpsgarage/servicecenter/internal/technician"
	techniciandomain "github.com/rpsgarage/servicecenter/internal/technician/domain"
	"github.com/rpsgarage/servicecenter/internal/vehicle"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	config.Module,
	fx.Provide(registerGin),
	auth.Module,
	session.Module,
	customer.Module,
	brand.Module,
	vehicle.Module,
	technician.Module,
	servicetemplate.Module,
	servicejob.Module,
	servicerequest.Module,
	invoice.Module,
	render.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics, registry)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	genID         *snowflake.Node
	sessions      *session.Manager
	authsvc       authdomain.Service
	customerSvc   customerdomain.Service
	brandSvc      branddomain.Service
	vehicleSvc    vehicledomain.Service
	technicianSvc techniciandomain.Service
	templateSvc   templatedomain.Service
	jobSvc        jobdomain.Service
	requestSvc    requestdomain.Service
	invoiceSvc    invoicedomain.Service
	invoiceHTML   *render.InvoiceRenderer
	invoicePDF    *pdf.InvoiceGenerator
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	GenID         *snowflake.Node
	Sessions      *session.Manager
	Authsvc       authdomain.Service
	CustomerSvc   customerdomain.Service
	BrandSvc      branddomain.Service
	VehicleSvc    vehicledomain.Service
	TechnicianSvc techniciandomain.Service
	TemplateSvc   templatedomain.Service
	JobSvc        jobdomain.Service
	RequestSvc    requestdomain.Service
	InvoiceSvc    invoicedomain.Service
	InvoiceHTML   *render.InvoiceRenderer
	InvoicePDF    *pdf.InvoiceGenerator
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		genID:         p.GenID,
		sessions:      p.Sessions,
		authsvc:       p.Authsvc,
		customerSvc:   p.CustomerSvc,
		brandSvc:      p.BrandSvc,
		vehicleSvc:    p.VehicleSvc,
		technicianSvc: p.TechnicianSvc,
		templateSvc:   p.TemplateSvc,
		jobSvc:        p.JobSvc,
		requestSvc:    p.RequestSvc,
		invoiceSvc:    p.InvoiceSvc,
		invoiceHTML:   p.InvoiceHTML,
		invoicePDF:    p.InvoicePDF,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAuthRoutes() {
	grp := s.engine.Group("/auth")
	grp.POST("/register", s.Register)
	grp.POST("/login", s.Login)
	grp.POST("/logout", s.Logout)

	authed := grp.Group("")
	authed.Use(s.AuthRequired())
	authed.GET("/me", s.Me)
	authed.POST("/change-password", s.ChangePassword)
	authed.PUT("/profile", s.UpdateProfile)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")
	api.Use(s.AuthRequired())

	customers := api.Group("/customers")
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomerByID)
	customers.POST("", s.CreateCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)
	customers.GET("/:id/vehicles", s.ListCustomerVehicles)

	brands := api.Group("/brands")
	brands.GET("", s.ListBrands)
	brands.GET("/:id", s.GetBrandByID)
	brands.POST("", s.CreateBrand)
	brands.PUT("/:id", s.UpdateBrand)
	brands.DELETE("/:id", s.DeleteBrand)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", s.ListVehicles)
	vehicles.GET("/:id", s.GetVehicleByID)
	vehicles.POST("", s.CreateVehicle)
	vehicles.PUT("/:id", s.UpdateVehicle)
	vehicles.DELETE("/:id", s.DeleteVehicle)

	technicians := api.Group("/technicians")
	technicians.GET("", s.ListTechnicians)
	technicians.GET("/:id", s.GetTechnicianByID)
	technicians.POST("", s.CreateTechnician)
	technicians.PUT("/:id", s.UpdateTechnician)
	technicians.DELETE("/:id", s.DeleteTechnician)

	templates := api.Group("/service-templates")
	templates.GET("", s.ListServiceTemplates)
	templates.GET("/:id", s.GetServiceTemplateByID)
	templates.POST("", s.CreateServiceTemplate)
	templates.PUT("/:id", s.UpdateServiceTemplate)
	templates.DELETE("/:id", s.DeleteServiceTemplate)

	jobs := api.Group("/services")
	jobs.GET("", s.ListServiceJobs)
	jobs.GET("/:id", s.GetServiceJobByID)
	jobs.POST("", s.CreateServiceJob)
	jobs.PUT("/:id", s.UpdateServiceJob)
	jobs.DELETE("/:id", s.DeleteServiceJob)

	requests := api.Group("/service-requests")
	requests.GET("", s.ListServiceRequests)
	requests.GET("/:id", s.GetServiceRequestByID)
	requests.GET("/:id/services", s.ListServiceRequestJobs)
	requests.POST("", s.CreateServiceRequest)
	requests.PUT("/:id", s.UpdateServiceRequest)
	requests.DELETE("/:id", s.DeleteServiceRequest)

	invoices := api.Group("/invoices")
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoiceByID)
	invoices.GET("/number/:number", s.GetInvoiceByNumber)
	invoices.GET("/:id/pdf", s.DownloadInvoicePDF)
	invoices.POST("", s.CreateInvoice)
	invoices.PUT("/:id", s.UpdateInvoice)
	invoices.DELETE("/:id", s.DeleteInvoice)

	printing := api.Group("/print/invoices")
	printing.GET("/:id", s.PrintInvoiceByID)
	printing.GET("/number/:number", s.PrintInvoiceByNumber)
}
