package calculator

import (
	"context"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Module wraps the resolution service in the mono module lifecycle and owns
// the CalculationResolved event.
type Module struct {
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module              = (*Module)(nil)
	_ mono.EventBusAwareModule = (*Module)(nil)
	_ mono.EventEmitterModule  = (*Module)(nil)
)

// NewModule creates a new calculator module.
func NewModule(logger types.Logger) *Module {
	return &Module{logger: logger}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "calculator"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		CalculationResolvedV1.ToBase(),
	}
}

// Start initializes the resolution service.
func (m *Module) Start(ctx context.Context) error {
	m.service = NewService(m.logger)
	m.logger.Info("Calculator module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(ctx context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}

// Service returns the resolution service instance.
func (m *Module) Service() *Service {
	return m.service
}

// PublishCalculationResolved publishes a CalculationResolved event. It is a
// no-op when no event bus is attached, so handlers can run in unit tests
// without the framework.
func (m *Module) PublishCalculationResolved(event CalculationResolvedEvent) error {
	if m.eventBus == nil {
		return nil
	}
	return CalculationResolvedV1.Publish(m.eventBus, event, nil)
}
