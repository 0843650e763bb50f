package order

import (
	"regexp"
	"strings"
)

// allowedPrefixes are the dialing prefixes of the service's operating region.
// They are matched literally on the digits-only form of the number, so the
// "+375..." and "8029..." spellings are distinct prefixes, not normalized
// into one another.
var allowedPrefixes = []string{"375", "8029", "8044", "8033", "8025"}

const minPhoneDigits = 9

var nonDigitRe = regexp.MustCompile(`\D`)

// ValidPhone strips every non-digit character and reports whether the
// remaining digits start with an allowed region prefix and are long enough
// to be a real number.
func ValidPhone(raw string) bool {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) < minPhoneDigits {
		return false
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(digits, prefix) {
			return true
		}
	}
	return false
}
