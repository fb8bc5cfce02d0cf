package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/web-calc-demo/modules/calculator"
)

// Module consumes CalculationResolved events and keeps an in-memory tally.
// The tally is diagnostic only and never affects a response.
type Module struct {
	store  *TallyStore
	logger types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module              = (*Module)(nil)
	_ mono.EventConsumerModule = (*Module)(nil)
)

// NewModule creates a new analytics module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		store:  NewTallyStore(),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterEventConsumers registers the handler for calculation events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	resolvedDef, ok := registry.GetEventByName("CalculationResolved", "v1", "calculator")
	if !ok {
		return fmt.Errorf("event CalculationResolved.v1 not found")
	}
	if err := registry.RegisterEventConsumer(resolvedDef, m.handleCalculationResolved, m); err != nil {
		return fmt.Errorf("failed to register CalculationResolved consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"CalculationResolved.v1"})
	return nil
}

// handleCalculationResolved processes CalculationResolved events.
func (m *Module) handleCalculationResolved(_ context.Context, msg *mono.Msg) error {
	var event calculator.CalculationResolvedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal CalculationResolved event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.RecordResolved(event.Operation, event.ResolvedAt)
	m.logger.Debug("Recorded calculation",
		"operation", event.Operation,
		"result", event.Result)

	return nil
}

// Start initializes the analytics module.
func (m *Module) Start(ctx context.Context) error {
	m.logger.Info("Analytics module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(ctx context.Context) error {
	m.logger.Info("Analytics module stopped")
	return nil
}

// Store returns the tally store.
func (m *Module) Store() *TallyStore {
	return m.store
}
