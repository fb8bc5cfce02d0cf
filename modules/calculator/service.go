package calculator

import (
	"errors"

	"github.com/go-monolith/mono/pkg/types"
)

// Service resolves raw request paths into calculation outcomes. It holds no
// state besides its logger and is safe for concurrent use.
type Service struct {
	logger types.Logger
}

// NewService creates a new resolution service.
func NewService(logger types.Logger) *Service {
	return &Service{logger: logger}
}

// Resolve runs the full pipeline for one request path: parse, evaluate,
// format. Every failure is reported through the Result tag; nothing panics
// and the same path always produces the same Result.
func (s *Service) Resolve(path string) Result {
	req, err := ParsePath(path)
	if err != nil {
		return Result{Outcome: OutcomeMalformed}
	}

	// Note the decoded request in the server log. Malformed paths and zero
	// divisions are answered, not logged.
	s.logger.Info("decoded calculation request",
		"path", path,
		"operation", string(req.Op),
		"v1", req.V1,
		"v2", req.V2)

	value, err := Evaluate(req.Op, req.V1, req.V2)
	if errors.Is(err, ErrDivisionByZero) {
		return Result{Outcome: OutcomeDivisionByZero, Request: req}
	}
	if err != nil {
		return Result{Outcome: OutcomeMalformed}
	}

	return Result{
		Outcome: OutcomeResolved,
		Request: req,
		Value:   value,
		Body:    FormatValue(value),
	}
}
