package calculator

import (
	"regexp"
	"strconv"
	"strings"
)

// pathPattern matches an "<op>/<value1>/<value2>" suffix anchored at the end
// of the path. The match is a search, not a full match: anything before the
// operation segment is ignored, so "/foo/add/3/5" resolves the same as
// "/add/3/5". Each operand allows an optional sign, then either
// "digits.digits" or a bare run of digits. The bare run may be empty; the
// empty string then fails float parsing below and the request falls through
// to the malformed outcome.
var pathPattern = regexp.MustCompile(`(add|subtract|divide|multiply)/([-+]?\d*\.\d+|[-+]?\d*)/([-+]?\d*\.\d+|[-+]?\d*)$`)

// ParsePath extracts an operation and two operands from a raw URL path.
// A single leading "/" is stripped before matching. The root path and any
// path without the expected suffix return ErrMalformedPath.
func ParsePath(path string) (Request, error) {
	m := pathPattern.FindStringSubmatch(strings.TrimPrefix(path, "/"))
	if m == nil {
		return Request{}, ErrMalformedPath
	}

	op, ok := parseOperation(m[1])
	if !ok {
		return Request{}, ErrMalformedPath
	}

	v1, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Request{}, ErrMalformedPath
	}

	v2, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Request{}, ErrMalformedPath
	}

	return Request{Op: op, V1: v1, V2: v2}, nil
}

func parseOperation(token string) (Operation, bool) {
	switch token {
	case "add":
		return OpAdd, true
	case "subtract":
		return OpSubtract, true
	case "multiply":
		return OpMultiply, true
	case "divide":
		return OpDivide, true
	default:
		return "", false
	}
}
