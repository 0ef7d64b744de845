package alert

import (
	"regexp"

	"spread-alerts/internal/spread"
)

// Type is a closed two-case alert kind. The zero value is not valid; use
// ParseType at the boundary.
type Type int

const (
	// TypeGreater triggers when the spread rises strictly above the threshold.
	TypeGreater Type = iota + 1
	// TypeLess triggers when the spread falls strictly below the threshold.
	TypeLess
)

func (t Type) String() string {
	switch t {
	case TypeGreater:
		return "GREATER"
	case TypeLess:
		return "LESS"
	default:
		return "UNKNOWN"
	}
}

// ParseType maps the wire spelling onto a Type. Anything other than the
// exact strings GREATER or LESS is rejected.
func ParseType(value string) (Type, error) {
	switch value {
	case "GREATER":
		return TypeGreater, nil
	case "LESS":
		return TypeLess, nil
	default:
		return 0, spread.InvalidAlertType(value)
	}
}

// Thresholds must be plain signed decimals: optional minus sign, optional
// integer part, optional dot, at least one digit at the end. No exponents.
var thresholdPattern = regexp.MustCompile(`^-?\d*\.?\d+$`)

// ValidateThreshold rejects threshold values that are not plain signed
// decimal numbers.
func ValidateThreshold(value string) error {
	if !thresholdPattern.MatchString(value) {
		return spread.InvalidValue(value)
	}
	return nil
}
