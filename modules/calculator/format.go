package calculator

import (
	"strconv"
	"strings"
)

// FormatValue renders a computed value for the response body: shortest
// decimal form, then a literal trailing ".0" is trimmed so integral results
// read as "15" rather than "15.0". Only that exact two-character suffix is
// special-cased; "10.0001" and a trailing ".10" are left alone.
func FormatValue(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', -1, 64), ".0")
}
