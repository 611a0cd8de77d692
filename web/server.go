package web

import (
	"errors"

	applogger "github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/logger"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/metrics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/web/handlers"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Server wraps the Fiber app that serves the derived views as JSON.
type Server struct {
	app *fiber.App
}

// NewServer creates the JSON API server for the view registry.
func NewServer(appName string, st *store.EntityStore, reg *registry.Registry) *Server {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(applogger.Middleware())
	app.Use(metrics.NewHTTPMetrics(appName).Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(metrics.GetPrometheusHandler()))

	h := handlers.New(st, reg)
	setupRoutes(app, h)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	zap.L().Info("server listening", zap.String("port", port))
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Get("/summary", h.Summary)

	// Collective refresh must be registered before the ":name" routes
	api.Post("/views/refresh", h.RefreshAll)

	api.Get("/views", h.ListViews)
	api.Get("/views/:name", h.GetView)
	api.Post("/views/:name/refresh", h.RefreshView)
}

// errorHandler renders every error as JSON, mapping the store's typed
// errors and unknown view names onto client statuses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	var dup *store.DuplicateKeyError
	var integrity *store.IntegrityError
	var invariant *store.InvariantViolation
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, registry.ErrUnknownView):
		code = fiber.StatusNotFound
	case errors.As(err, &dup):
		code = fiber.StatusConflict
	case errors.As(err, &integrity), errors.As(err, &invariant):
		code = fiber.StatusUnprocessableEntity
	}

	if code >= fiber.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
