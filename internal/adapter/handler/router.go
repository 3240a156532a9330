package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/common"
	httpmw "github.com/johnquangdev/meeting-insights/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

const healthCheckTimeout = 2 * time.Second

// Checker reports whether a dependency is reachable
type Checker func(ctx context.Context) error

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Meeting      *Meeting
	ActionItem   *ActionItem
	User         *User
	Notification *Notification
	Analysis     *Analysis
}

// Router holds all handlers
type Router struct {
	cfg      *config.Config
	logger   *zap.Logger
	handlers Handlers
	checks   map[string]Checker
	metrics  http.Handler
}

// NewRouter creates a new router with all handlers. checks are run by the
// health endpoint, keyed by dependency name.
func NewRouter(cfg *config.Config, logger *zap.Logger, handlers Handlers, checks map[string]Checker) *Router {
	return &Router{
		cfg:      cfg,
		logger:   logger,
		handlers: handlers,
		checks:   checks,
		metrics:  promhttp.Handler(),
	}
}

// Setup configures middleware and all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.Validator = pkgvalidator.New()

	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(rt.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(rt.cfg.Server.BodyLimit))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: rt.cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(rt.metrics))

	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
	rt.setupActionItemRoutes(api)
	rt.setupNotificationRoutes(api)
	rt.setupAnalysisRoutes(api)

	if h := rt.handlers.User; h != nil {
		api.GET("/users", h.ListUsers)
	}
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	h := rt.handlers.Meeting
	if h == nil {
		return
	}

	meetings := g.Group("/meetings")
	meetings.GET("", h.ListMeetings)
	meetings.POST("", h.CreateMeeting)
	meetings.GET("/:id", h.GetMeeting)
	meetings.PATCH("/:id", h.UpdateMeeting)
}

func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	h := rt.handlers.ActionItem
	if h == nil {
		return
	}

	g.GET("/action-items", h.ListActionItems)
	g.POST("/action-items", h.CreateActionItem)
	g.PATCH("/action-items/:id", h.UpdateActionItem)
	g.POST("/decisions", h.CreateDecision)
}

func (rt *Router) setupNotificationRoutes(g *echo.Group) {
	h := rt.handlers.Notification
	if h == nil {
		return
	}

	notifications := g.Group("/notifications")
	notifications.GET("", h.ListNotifications)
	notifications.POST("", h.CreateNotification)
	notifications.GET("/ws", h.Subscribe)
	notifications.PATCH("/:id/read", h.MarkRead)
}

func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	h := rt.handlers.Analysis
	if h == nil {
		return
	}

	g.POST("/transcripts/parse", h.ParseTranscript)
	g.POST("/meetings/analyze", h.AnalyzeMeeting)
}

// healthCheck reports the service status and pings each dependency
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	}

	names := make([]string, 0, len(rt.checks))
	for name := range rt.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	if len(names) > 0 {
		resp.Dependencies = make(map[string]string, len(names))
	}
	for _, name := range names {
		if err := rt.checks[name](ctx); err != nil {
			resp.Dependencies[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			if rt.logger != nil {
				rt.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			}
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	return c.JSON(status, resp)
}
