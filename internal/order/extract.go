// Package order parses completion-provider output into delivery order fields
// and validates the result against the service's acceptance rules.
package order

import (
	"regexp"
	"strings"
)

// Order holds the fields extracted from a single completion response.
// Fields the response did not provide stay empty.
type Order struct {
	Interval string
	Address  string
	Phone    string
	Comment  string
}

// commentMarker is the literal label the extraction prompt asks the model to
// put in front of the customer comment.
const commentMarker = "Комментарий заказчика:"

var (
	intervalRe  = regexp.MustCompile(`\d{1,2}:\d{2}`)
	phoneLineRe = regexp.MustCompile(`\+?\d{7,}`)
	nonPhoneRe  = regexp.MustCompile(`[^\d+]`)
)

// Extract classifies each line of the completion text into exactly one field,
// first match wins per line: time interval, customer comment, phone number,
// and anything else is taken as the address. The parse is tolerant because
// the upstream response is free text; later lines overwrite earlier ones in
// the same category.
func Extract(text string) Order {
	var o Order
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		lower := strings.ToLower(line)
		switch {
		case intervalRe.MatchString(line) ||
			strings.Contains(lower, "ближайшее") ||
			strings.Contains(lower, "как можно скорее"):
			o.Interval = strings.TrimSpace(line)
		case strings.Contains(line, commentMarker):
			_, after, _ := strings.Cut(line, commentMarker)
			o.Comment = strings.TrimSpace(after)
		case phoneLineRe.MatchString(line):
			o.Phone = nonPhoneRe.ReplaceAllString(strings.TrimSpace(line), "")
		default:
			o.Address = strings.TrimSpace(line)
		}
	}
	return o
}
