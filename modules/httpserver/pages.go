package httpserver

import (
	"fmt"
	"strings"

	"github.com/example/web-calc-demo/modules/calculator"
)

// zeroDivisionPage is the fixed body for a structurally valid divide request
// with a zero divisor.
const zeroDivisionPage = "<h1>400 Bad Request</h1><h2>ZeroDivision Error!</h2>"

// usagePage builds the fallback page served for the root path and any
// request that does not resolve to a calculation. baseURL is expected to end
// with "/".
func usagePage(baseURL string) string {
	var b strings.Builder

	b.WriteString("<h1>Web Calc 2000</h1>")
	b.WriteString("<p>To calculate a value, enter a URL in the format:</p>")
	fmt.Fprintf(&b, "<p>%saction/value1/value2</p>", baseURL)
	b.WriteString("<p>Where action can be one of the following:</p>")
	b.WriteString("<ul>")
	for _, op := range calculator.Operations {
		fmt.Fprintf(&b, "<li>%s</li>", op)
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Example:</p>")
	fmt.Fprintf(&b, "<p>%sadd/3/2</p>", baseURL)
	b.WriteString("<p>Will result in the browser returning '5'</p>")

	return b.String()
}
