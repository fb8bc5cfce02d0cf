package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/web-calc-demo/modules/analytics"
	"github.com/example/web-calc-demo/modules/calculator"
)

// Module implements the HTTP server module using the Fiber framework.
type Module struct {
	app             *fiber.App
	handlers        *Handlers
	addr            string
	baseURL         string
	calcModule      *calculator.Module
	analyticsModule *analytics.Module
	logger          types.Logger
}

// Compile-time interface check
var _ mono.Module = (*Module)(nil)

// NewModule creates a new HTTP server module. baseURL is the externally
// reachable address interpolated into the usage page.
func NewModule(
	addr string,
	baseURL string,
	calcModule *calculator.Module,
	analyticsModule *analytics.Module,
	moduleLogger types.Logger,
) *Module {
	return &Module{
		addr:            addr,
		baseURL:         baseURL,
		calcModule:      calcModule,
		analyticsModule: analyticsModule,
		logger:          moduleLogger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "http-server"
}

// Start initializes and starts the HTTP server.
func (m *Module) Start(ctx context.Context) error {
	m.app = fiber.New(fiber.Config{
		AppName:               "Web Calc Demo",
		DisableStartupMessage: true,
	})

	// Add middleware
	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))

	// Create handlers
	m.handlers = NewHandlers(m.calcModule, m.analyticsModule, m.baseURL)

	// Register routes
	m.registerRoutes()

	// Start server in goroutine with startup error detection
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			errCh <- err
		}
	}()

	// Wait briefly to catch immediate startup errors (port in use, permission denied)
	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
		// Server started successfully
	}

	m.logger.Info("HTTP server started", "addr", m.addr, "baseURL", m.baseURL)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (m *Module) Stop(ctx context.Context) error {
	if m.app != nil {
		if err := m.app.ShutdownWithContext(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

// registerRoutes sets up all HTTP routes.
func (m *Module) registerRoutes() {
	// Health check
	m.app.Get("/health", m.handlers.HealthCheck)

	// Analytics
	m.app.Get("/api/v1/analytics", m.handlers.GetAnalytics)

	// Calculator catch-all (must be last). A wildcard instead of per-op
	// routes: the resolver needs the raw path so suffix matching and the
	// usage-page fallback behave as documented.
	m.app.Get("/*", m.handlers.Calculate)
}
