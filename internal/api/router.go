package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/eduplatform/education-api/internal/api/docs"
	"github.com/eduplatform/education-api/internal/api/handler"
	"github.com/eduplatform/education-api/internal/api/middleware"
	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

// Deps is everything the router needs. Services are built by the caller.
type Deps struct {
	APIPrefix string
	Log       zerolog.Logger

	Auth     ports.AuthService
	Users    ports.UserService
	Articles ports.ArticleService
	Courses  ports.CourseService

	// Checks feed the readiness check.
	Checks []handler.DependencyCheck

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "education",
		Subsystem:  "http",
		Registerer: deps.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users, deps.Articles)
	articleHandler := handler.NewArticleHandler(deps.Articles)
	courseHandler := handler.NewCourseHandler(deps.Courses)
	healthHandler := handler.NewHealthHandler(deps.Checks...)

	auth := middleware.Auth(deps.Auth)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	selfOrAdmin := middleware.SelfOrAdmin("id")

	v := e.Group(deps.APIPrefix)

	// --- Users ---
	users := v.Group("/usuarios")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", authHandler.Login)
	users.GET("/authenticate", authHandler.Authenticated, auth)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, auth, selfOrAdmin)
	users.DELETE("/:id", userHandler.Delete, auth, selfOrAdmin)

	// --- Articles ---
	articles := v.Group("/artigos")
	articles.GET("", articleHandler.List)
	articles.GET("/:id", articleHandler.Get)
	articles.POST("", articleHandler.Create, auth)
	articles.PUT("/:id", articleHandler.Update, auth)
	articles.DELETE("/:id", articleHandler.Delete, auth)

	// --- Courses ---
	courses := v.Group("/cursos")
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.POST("", courseHandler.Create, auth, adminOnly)
	courses.PUT("/:id", courseHandler.Update, auth, adminOnly)
	courses.DELETE("/:id", courseHandler.Delete, auth, adminOnly)

	// --- Health checks (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
