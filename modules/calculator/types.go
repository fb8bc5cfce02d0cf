package calculator

// Operation identifies one of the four supported arithmetic actions.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists the supported actions in the order the usage page
// presents them.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Request is a fully parsed calculation request.
type Request struct {
	Op Operation
	V1 float64
	V2 float64
}

// Outcome is the terminal state of resolving one request path.
type Outcome int

const (
	// OutcomeResolved means the path parsed and the operation computed.
	OutcomeResolved Outcome = iota
	// OutcomeDivisionByZero means the path parsed but the divisor was zero.
	OutcomeDivisionByZero
	// OutcomeMalformed covers unparseable paths, bad operands and unknown
	// operation tokens.
	OutcomeMalformed
)

// Result is the tagged outcome of resolving one path.
// Request is populated for Resolved and DivisionByZero; Value and Body only
// for Resolved.
type Result struct {
	Outcome Outcome
	Request Request
	Value   float64
	Body    string
}
