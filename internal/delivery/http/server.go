package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/config"
	"github.com/fleet-logistics-service/internal/delivery/http/handler"
	"github.com/fleet-logistics-service/internal/delivery/http/middleware"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/utils"
)

// HealthChecker - зависимость, которую проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers - набор обработчиков API
type Handlers struct {
	Station  *handler.StationHandler
	Barge    *handler.BargeHandler
	Tugboat  *handler.TugboatHandler
	Customer *handler.CustomerHandler
	Carrier  *handler.CarrierHandler
	Order    *handler.OrderHandler
	Cost     *handler.CostHandler
	Schedule *handler.ScheduleHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	health   map[string]HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers, health map[string]HealthChecker) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Fleet Logistics Service",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		health:   health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/health", s.healthCheck)

	api := s.app.Group("/v1")

	stations := api.Group("/stations")
	stations.Get("/", s.handlers.Station.List)
	stations.Get("/statistics", s.handlers.Station.GetStatistics)
	stations.Get("/type/:type", s.handlers.Station.ListByType)
	stations.Get("/:id", s.handlers.Station.GetByID)
	stations.Post("/", s.handlers.Station.Create)
	stations.Put("/:id", s.handlers.Station.Update)
	stations.Delete("/", s.handlers.Station.DeleteMany)
	stations.Delete("/:id", s.handlers.Station.Delete)

	barges := api.Group("/barges")
	barges.Get("/", s.handlers.Barge.List)
	barges.Get("/:id", s.handlers.Barge.GetByID)
	barges.Post("/", s.handlers.Barge.Create)
	barges.Put("/:id", s.handlers.Barge.Update)
	barges.Delete("/", s.handlers.Barge.DeleteMany)
	barges.Delete("/:id", s.handlers.Barge.Delete)
	barges.Post("/:id/stations", s.handlers.Barge.AssignStation)
	barges.Delete("/:id/stations", s.handlers.Barge.UnassignStation)

	tugboats := api.Group("/tugboats")
	tugboats.Get("/", s.handlers.Tugboat.List)
	tugboats.Post("/upload", s.handlers.Tugboat.Upload)
	tugboats.Get("/:id", s.handlers.Tugboat.GetByID)
	tugboats.Post("/", s.handlers.Tugboat.Create)
	tugboats.Put("/:id", s.handlers.Tugboat.Update)
	tugboats.Delete("/", s.handlers.Tugboat.DeleteMany)
	tugboats.Delete("/:id", s.handlers.Tugboat.Delete)
	tugboats.Post("/:id/stations", s.handlers.Tugboat.AssignStation)
	tugboats.Delete("/:id/stations", s.handlers.Tugboat.UnassignStation)

	customers := api.Group("/customers")
	customers.Get("/", s.handlers.Customer.List)
	customers.Get("/:id", s.handlers.Customer.GetByID)
	customers.Post("/", s.handlers.Customer.Create)
	customers.Put("/:id", s.handlers.Customer.Update)
	customers.Delete("/", s.handlers.Customer.DeleteMany)
	customers.Delete("/:id", s.handlers.Customer.Delete)
	customers.Post("/:id/stations", s.handlers.Customer.AssignStation)
	customers.Delete("/:id/stations", s.handlers.Customer.UnassignStation)
	if s.config.Features.CustomerStationLinks {
		customers.Get("/:id/linked-stations", s.handlers.Customer.LinkedStations)
		customers.Post("/:id/linked-stations/:stationId", s.handlers.Customer.LinkStation)
		customers.Delete("/:id/linked-stations/:stationId", s.handlers.Customer.UnlinkStation)
	}

	carriers := api.Group("/carriers")
	carriers.Get("/", s.handlers.Carrier.List)
	carriers.Get("/:id", s.handlers.Carrier.GetByID)
	carriers.Post("/", s.handlers.Carrier.Create)
	carriers.Put("/:id", s.handlers.Carrier.Update)
	carriers.Delete("/", s.handlers.Carrier.DeleteMany)
	carriers.Delete("/:id", s.handlers.Carrier.Delete)

	orders := api.Group("/orders")
	orders.Get("/", s.handlers.Order.List)
	orders.Post("/upload", s.handlers.Order.Upload)
	orders.Get("/:id", s.handlers.Order.GetByID)
	orders.Post("/", s.handlers.Order.Create)
	orders.Put("/:id", s.handlers.Order.Update)
	orders.Delete("/", s.handlers.Order.DeleteMany)
	orders.Delete("/:id", s.handlers.Order.Delete)

	costs := api.Group("/costs")
	costs.Get("/", s.handlers.Cost.List)
	costs.Get("/tugboat/:tugboatId/order/:orderId", s.handlers.Cost.GetByKey)
	costs.Get("/tugboat/:tugboatId", s.handlers.Cost.ByTugboat)
	costs.Get("/order/:orderId", s.handlers.Cost.ByOrder)
	costs.Get("/:id", s.handlers.Cost.GetByID)

	schedules := api.Group("/schedules")
	schedules.Get("/", s.handlers.Schedule.List)
	schedules.Get("/timeline", s.handlers.Schedule.Timeline)
	schedules.Get("/view-type-point", s.handlers.Schedule.TypePoints)
	schedules.Get("/tugboat/:tugboatId/order/:orderId", s.handlers.Schedule.ByTugboatAndOrder)
	schedules.Get("/tugboat/:tugboatId", s.handlers.Schedule.ByTugboat)
	schedules.Get("/order/:orderId", s.handlers.Schedule.ByOrder)
}

// healthCheck проверяет зависимости; 503, если хотя бы одна недоступна
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := make(fiber.Map, len(s.health))
	for name, checker := range s.health {
		if err := checker.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unavailable"
			status = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "healthy"
	if status != fiber.StatusOK {
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": state,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паника, лимит тела)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := errors.As(err); ok {
			return utils.SendError(c, err)
		}

		code := fiber.StatusInternalServerError
		message := errors.ErrInternalServer.Message
		errCode := errors.CodeInternal
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch {
			case code == fiber.StatusNotFound:
				errCode = errors.CodeNotFound
			case code < fiber.StatusInternalServerError:
				errCode = errors.CodeInvalidRequest
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Status:   code,
			Response: message,
			Error:    errCode,
		})
	}
}
