package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fpdual/dual-admin/internal/api/handler"
	"github.com/fpdual/dual-admin/internal/api/middleware"
	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/service"
	"github.com/fpdual/dual-admin/internal/infrastructure/db/sqlite"
	"github.com/fpdual/dual-admin/internal/ws"
)

// RouterConfig carries the knobs the router needs beyond its dependencies.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	RateLimit float64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, hub *ws.Hub, log zerolog.Logger, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dualadmin"))

	// --- Dependencies ---
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := sqlite.NewUserRepository(db)
	yearRepo := sqlite.NewAcademicYearRepository(db)
	groupRepo := sqlite.NewGroupRepository(db)
	studentRepo := sqlite.NewStudentRepository(db)
	companyRepo := sqlite.NewCompanyRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	dashboardRepo := sqlite.NewDashboardRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, codec))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo), hub)
	yearHandler := handler.NewAcademicYearHandler(service.NewAcademicYearService(yearRepo), hub)
	groupHandler := handler.NewGroupHandler(service.NewGroupService(groupRepo, yearRepo), hub)
	studentHandler := handler.NewStudentHandler(service.NewStudentService(studentRepo), hub)
	companyHandler := handler.NewCompanyHandler(service.NewCompanyService(companyRepo), hub)
	activityHandler := handler.NewActivityHandler(service.NewActivityService(activityRepo, studentRepo), hub)
	dashboardHandler := handler.NewDashboardHandler(dashboardRepo)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Notification stream ---
	e.GET("/ws", ws.Handler(hub))

	// --- API ---
	apiGroup := e.Group("/api")
	apiGroup.Use(echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit)),
	))

	apiGroup.POST("/login", authHandler.Login)

	authed := apiGroup.Group("", middleware.Auth(codec))
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleCenterTutor, domain.RoleCompanyTutor)
	reviewers := middleware.RBAC(domain.RoleAdmin, domain.RoleCenterTutor)

	// Password changes enforce self-or-admin inside the service, not here.
	authed.POST("/users/:id/change-password", authHandler.ChangePassword)

	authed.GET("/users", userHandler.List, adminOnly)
	authed.GET("/users/company-tutors", userHandler.CompanyTutors)
	authed.POST("/users", userHandler.Create, adminOnly)
	authed.PUT("/users/:id", userHandler.Update, adminOnly)
	authed.PATCH("/users/:id/toggle", userHandler.ToggleActive, adminOnly)

	authed.GET("/academic-years", yearHandler.List)
	authed.POST("/academic-years", yearHandler.Create, adminOnly)
	authed.PUT("/academic-years/:id", yearHandler.Update, adminOnly)
	authed.PATCH("/academic-years/:id/toggle", yearHandler.ToggleActive, adminOnly)
	authed.DELETE("/academic-years/:id", yearHandler.Delete, adminOnly)

	authed.GET("/groups", groupHandler.List)
	authed.POST("/groups", groupHandler.Create, adminOnly)
	authed.PUT("/groups/:id", groupHandler.Update, adminOnly)
	authed.PATCH("/groups/:id/toggle", groupHandler.ToggleActive, adminOnly)
	authed.DELETE("/groups/:id", groupHandler.Delete, adminOnly)

	authed.GET("/students", studentHandler.List)
	authed.POST("/students", studentHandler.Create, adminOnly)
	authed.PUT("/students/:id", studentHandler.Update, adminOnly)
	authed.PATCH("/students/:id/toggle", studentHandler.ToggleActive, adminOnly)

	authed.GET("/companies", companyHandler.List)
	authed.POST("/companies", companyHandler.Create, adminOnly)
	authed.PUT("/companies/:id", companyHandler.Update, adminOnly)
	authed.PATCH("/companies/:id/toggle", companyHandler.ToggleActive, adminOnly)
	authed.POST("/companies/:id/work-centers", companyHandler.AddWorkCenter, adminOnly)
	authed.PUT("/companies/:id/work-centers/:centerId", companyHandler.UpdateWorkCenter, adminOnly)
	authed.PATCH("/companies/:id/work-centers/:centerId/toggle", companyHandler.ToggleWorkCenter, adminOnly)

	authed.GET("/activities", activityHandler.List)
	authed.POST("/activities", activityHandler.Log, anyRole)
	authed.PUT("/activities/:id/status", activityHandler.Review, reviewers)

	authed.GET("/dashboard/stats", dashboardHandler.Stats)

	return e
}
