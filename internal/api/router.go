package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lendwise/admin-console/internal/api/handler"
	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
	"github.com/lendwise/admin-console/internal/core/service"
	mongodb "github.com/lendwise/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/lendwise/admin-console/internal/infrastructure/db/redis"
	"github.com/lendwise/admin-console/internal/upstream"
)

// Deps carries everything the router needs wired.
type Deps struct {
	Log           zerolog.Logger
	Redis         *redis.Client
	Mongo         *mongo.Database
	Client        *upstream.Client
	Audit         ports.AuditSink
	SessionSecret string
	SecureCookies bool
}

// NewRouter builds the Echo instance with all console routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Session plumbing ---
	codec := middleware.NewCookieCodec(d.SessionSecret)
	store := redisdb.NewSessionStore(d.Redis)

	// --- Upstream façades ---
	authAPI := upstream.NewAuth(d.Client)
	leadsAPI := upstream.NewLeads(d.Client)
	loansAPI := upstream.NewLoans(d.Client)
	employeesAPI := upstream.NewEmployees(d.Client)
	dashboardAPI := upstream.NewDashboard(d.Client)
	uploadsAPI := upstream.NewUploads(d.Client)

	// --- Services ---
	authService := service.NewAuthService(authAPI, store, d.Audit, d.Log)
	exportService := service.NewExportService(leadsAPI, redisdb.NewInFlightGuard(d.Redis), d.Audit, d.Log)
	employeeService := service.NewEmployeeService(employeesAPI, d.Audit, d.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, authAPI, codec, d.SecureCookies)
	leadHandler := handler.NewLeadHandler(leadsAPI, exportService)
	loanHandler := handler.NewLoanHandler(loansAPI)
	employeeHandler := handler.NewEmployeeHandler(employeesAPI, employeeService)
	dashboardHandler := handler.NewDashboardHandler(dashboardAPI)
	uploadHandler := handler.NewUploadHandler(uploadsAPI, d.Audit)
	auditHandler := handler.NewAuditHandler(mongodb.NewAuditRepository(d.Mongo))

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/reset-password", authHandler.ResetPassword)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Guarded routes ---
	perm := func(module, action string) echo.MiddlewareFunc {
		return middleware.RequirePermission(module, action, d.Log)
	}
	guardFor := func(module string) func(action string) echo.MiddlewareFunc {
		return func(action string) echo.MiddlewareFunc { return perm(module, action) }
	}

	g := e.Group("", middleware.SessionGuard(codec, store))

	g.POST("/logout", authHandler.Logout)

	g.GET("/dashboard", dashboardHandler.Stats, perm(domain.ModuleDashboard, domain.ActionView))
	g.GET("/logs", dashboardHandler.Logs, perm(domain.ModuleLogs, domain.ActionView))

	g.GET("/leads", leadHandler.List, perm(domain.ModuleLeads, domain.ActionView))
	g.GET("/leads/export", leadHandler.Export, perm(domain.ModuleLeads, domain.ActionView))
	g.GET("/leads/last-download", leadHandler.LastDownload, perm(domain.ModuleLeads, domain.ActionView))
	g.PUT("/leads/bulk-status", leadHandler.BulkStatus, perm(domain.ModuleLeads, domain.ActionUpdate))
	g.GET("/leads/:id", leadHandler.Get, perm(domain.ModuleLeads, domain.ActionView))
	g.POST("/leads", leadHandler.Create, perm(domain.ModuleLeads, domain.ActionCreate))
	g.PUT("/leads/:id", leadHandler.Update, perm(domain.ModuleLeads, domain.ActionUpdate))
	g.DELETE("/leads/:id", leadHandler.Delete, perm(domain.ModuleLeads, domain.ActionDelete))

	g.GET("/loan-requests", loanHandler.List, perm(domain.ModuleLoans, domain.ActionView))
	g.GET("/loan-requests/:id", loanHandler.Get, perm(domain.ModuleLoans, domain.ActionView))

	g.GET("/employees", employeeHandler.List, perm(domain.ModuleEmployees, domain.ActionView))
	g.POST("/employees", employeeHandler.Create, perm(domain.ModuleEmployees, domain.ActionCreate))
	g.GET("/employees/:id", employeeHandler.Get, perm(domain.ModuleEmployees, domain.ActionView))
	g.PUT("/employees/:id", employeeHandler.Update, perm(domain.ModuleEmployees, domain.ActionUpdate))
	g.DELETE("/employees/:id", employeeHandler.Delete, perm(domain.ModuleEmployees, domain.ActionDelete))
	g.GET("/employees/:id/permissions", employeeHandler.Permissions, perm(domain.ModuleEmployees, domain.ActionView))
	g.PUT("/employees/:id/permissions", employeeHandler.UpdatePermissions, perm(domain.ModuleEmployees, domain.ActionUpdate))
	g.POST("/employees/:id/permissions/toggle", employeeHandler.TogglePermission, perm(domain.ModuleEmployees, domain.ActionUpdate))

	handler.NewContentHandler(upstream.NewBlogs(d.Client)).Register(g, "/blogs", guardFor(domain.ModuleBlogs))
	handler.NewContentHandler(upstream.NewNews(d.Client)).Register(g, "/news", guardFor(domain.ModuleNews))
	handler.NewContentHandler(upstream.NewTestimonials(d.Client)).Register(g, "/testimonials", guardFor(domain.ModuleTestimonials))
	handler.NewContentHandler(upstream.NewDictionary(d.Client)).Register(g, "/financial-dictionary", guardFor(domain.ModuleDictionary))
	handler.NewContentHandler(upstream.NewUTMLinks(d.Client)).Register(g, "/utm-links", guardFor(domain.ModuleUTMLinks))
	handler.NewContentHandler(upstream.NewBusiness(d.Client)).Register(g, "/business", guardFor(domain.ModuleBusiness))

	g.POST("/uploads", uploadHandler.Upload)
	g.GET("/console/audit", auditHandler.List, perm(domain.ModuleLogs, domain.ActionView))

	return e
}
