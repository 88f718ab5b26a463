package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/edustack/course-platform/docs"
	"github.com/edustack/course-platform/internal/api/handler"
	"github.com/edustack/course-platform/internal/api/middleware"
	"github.com/edustack/course-platform/internal/core/domain"
	"github.com/edustack/course-platform/internal/core/ports"
)

// Deps carries the wired services the router needs.
type Deps struct {
	AuthService   ports.AuthService
	CourseService ports.CourseService
	Audit         ports.AuditSink
	DemoAccounts  []domain.DemoAccount
	JWTSecret     string
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("course_platform"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Audit, deps.DemoAccounts)
	courseHandler := handler.NewCourseHandler(deps.CourseService)
	requireAuth := middleware.Auth(deps.JWTSecret)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Authentication routes ---
	auth := e.Group("/api/authentication")
	auth.POST("/Login", authHandler.Login)
	auth.POST("/Register", authHandler.Register)
	auth.POST("/RegisterAdmin", authHandler.RegisterAdmin)
	auth.GET("", authHandler.GetUsers)

	// --- Course routes (catalog reads are open, inserts are admin-only) ---
	auth.GET("/GetCourses", courseHandler.GetCourses)
	auth.GET("/GetByID", courseHandler.GetByID)
	// Route name kept verbatim from the contract, space included.
	auth.POST("/Add Courses", courseHandler.AddCourse, requireAuth, requireAdmin)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
