package statement

import "fmt"

// MissingFieldError reports a canonical field absent from a joined row. It is
// a hard failure: derivation must not substitute zero for the missing value.
// A present-but-zero denominator is not this case; that yields NaN downstream.
type MissingFieldError struct {
	Year  int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("year %d: missing required field %s", e.Year, e.Field)
}
