package httpserver

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/web-calc-demo/modules/analytics"
	"github.com/example/web-calc-demo/modules/calculator"
)

// Handlers contains HTTP request handlers for the calculator surface.
type Handlers struct {
	calcModule      *calculator.Module
	analyticsModule *analytics.Module
	usageBody       string
	logger          *slog.Logger
}

// NewHandlers creates a new handlers instance. The usage page is rendered
// once since it only depends on the injected base URL.
func NewHandlers(
	calcModule *calculator.Module,
	analyticsModule *analytics.Module,
	baseURL string,
) *Handlers {
	return &Handlers{
		calcModule:      calcModule,
		analyticsModule: analyticsModule,
		usageBody:       usagePage(baseURL),
		logger:          slog.Default(),
	}
}

// Calculate handles calculation requests (GET /*). Every path maps to a
// well-formed response; nothing here can fail the request.
func (h *Handlers) Calculate(c *fiber.Ctx) error {
	res := h.calcModule.Service().Resolve(c.Path())

	c.Type("html")

	switch res.Outcome {
	case calculator.OutcomeResolved:
		// Publish CalculationResolved event (best-effort, log errors)
		if err := h.calcModule.PublishCalculationResolved(calculator.CalculationResolvedEvent{
			Path:       c.Path(),
			Operation:  string(res.Request.Op),
			V1:         res.Request.V1,
			V2:         res.Request.V2,
			Result:     res.Value,
			ResolvedAt: time.Now(),
		}); err != nil {
			h.logger.Debug("Failed to publish CalculationResolved event",
				"path", c.Path(),
				"error", err)
		}
		return c.SendString(res.Body)

	case calculator.OutcomeDivisionByZero:
		return c.Status(fiber.StatusBadRequest).SendString(zeroDivisionPage)

	default:
		// Malformed paths, the root path included, get the usage page with
		// a 200 - informational, never a hard failure.
		return c.SendString(h.usageBody)
	}
}

// GetAnalytics handles tally summary requests (GET /api/v1/analytics).
func (h *Handlers) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(h.analyticsModule.Store().Summary())
}

// HealthCheck handles health check requests (GET /health).
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "web-calc-demo",
	})
}
