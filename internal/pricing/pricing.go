// Package pricing classifies income-adjustment messages against the fixed
// price rule table of the delivery service.
package pricing

import (
	"regexp"
	"strings"
)

// Rule pairs a text matcher with the amount (BYN) credited when it matches.
type Rule struct {
	Pattern *regexp.Regexp
	Amount  int
}

// rules is evaluated top to bottom and the first match wins. The specific
// add-on colour rules must stay above the generic "мк" rule, which in turn
// must stay above the bare +/- rule. Precedence is the ordering itself, not
// the amounts.
var rules = []Rule{
	{regexp.MustCompile(`мк доп голубая`), 91},
	{regexp.MustCompile(`мк доп темно-серая`), 82},
	{regexp.MustCompile(`мк доп розовая`), 74},
	{regexp.MustCompile(`мк доп светло-серая`), 65},
	{regexp.MustCompile(`мк доп коричневая`), 57},
	{regexp.MustCompile(`мк доп салатовая`), 48},
	{regexp.MustCompile(`мк доп оранжевая`), 40},
	{regexp.MustCompile(`мк доп красная`), 31},
	{regexp.MustCompile(`мк доп синяя`), 23},
	{regexp.MustCompile(`мк(\.|$|\s)|мк`), 15},
	{regexp.MustCompile(`\+|^-`), 10},
}

var adjustmentRe = regexp.MustCompile(`(^|\s)[+\-]`)

// IsAdjustment reports whether the message carries a leading +/- token and
// should be treated as an income adjustment rather than a delivery order.
func IsAdjustment(text string) bool {
	return adjustmentRe.MatchString(text)
}

// Classify lower-cases the text and returns the amount of the first matching
// rule, or 0 when no rule matches.
func Classify(text string) int {
	text = strings.ToLower(text)
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			return r.Amount
		}
	}
	return 0
}
