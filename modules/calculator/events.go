package calculator

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationResolvedEvent is emitted after a path resolves to a computed
// value. Malformed and zero-division requests emit nothing.
type CalculationResolvedEvent struct {
	Path       string    `json:"path"`
	Operation  string    `json:"operation"`
	V1         float64   `json:"v1"`
	V2         float64   `json:"v2"`
	Result     float64   `json:"result"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// CalculationResolvedV1 is the typed event definition for resolved
// calculations.
var CalculationResolvedV1 = helper.EventDefinition[CalculationResolvedEvent](
	"calculator",
	"CalculationResolved",
	"v1",
)
