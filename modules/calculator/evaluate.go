package calculator

// Evaluate applies op to the two operands. The operation set is closed, so
// dispatch is a plain switch. Divide is the only operation with a failure
// mode: an exactly-zero divisor returns ErrDivisionByZero.
func Evaluate(op Operation, v1, v2 float64) (float64, error) {
	switch op {
	case OpAdd:
		return v1 + v2, nil
	case OpSubtract:
		return v1 - v2, nil
	case OpMultiply:
		return v1 * v2, nil
	case OpDivide:
		if v2 == 0 {
			return 0, ErrDivisionByZero
		}
		return v1 / v2, nil
	default:
		return 0, ErrUnknownOperation
	}
}
