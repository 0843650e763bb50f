package order

import (
	"fmt"
	"regexp"
)

// Status describes the validation outcome of an extracted order.
type Status int

const (
	StatusAccepted Status = iota
	StatusMissingFields
	StatusInvalidPhone
)

// Outcome is the result of validating an extracted order. MissingFields is
// populated only for StatusMissingFields, Formatted only for StatusAccepted.
type Outcome struct {
	Status        Status
	MissingFields []string
	Formatted     string
}

// Field labels used in the missing-fields rejection reply.
const (
	labelAddress  = "адрес с номером дома"
	labelInterval = "временной интервал"
	labelPhone    = "номер телефона"
)

var digitRe = regexp.MustCompile(`\d`)

// Validate applies the acceptance rules. An address must contain a house
// number, the interval and phone must be present. A phone that is present
// but outside the operating region rejects the order on its own, before any
// missing-fields report.
func Validate(o Order) Outcome {
	var missing []string
	if o.Address == "" || !digitRe.MatchString(o.Address) {
		missing = append(missing, labelAddress)
	}
	if o.Interval == "" {
		missing = append(missing, labelInterval)
	}
	if o.Phone == "" {
		missing = append(missing, labelPhone)
	} else if !ValidPhone(o.Phone) {
		return Outcome{Status: StatusInvalidPhone}
	}

	if len(missing) > 0 {
		return Outcome{Status: StatusMissingFields, MissingFields: missing}
	}
	return Outcome{Status: StatusAccepted, Formatted: Format(o)}
}

// Format renders the canonical four-line order used in the acceptance reply.
// An absent comment is rendered as a dash.
func Format(o Order) string {
	comment := o.Comment
	if comment == "" {
		comment = "—"
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s %s", o.Interval, o.Address, o.Phone, commentMarker, comment)
}
