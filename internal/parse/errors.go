package parse

import "fmt"

// UnrecognizedFormatError indicates input that matched none of the
// code / numeric / text patterns.
type UnrecognizedFormatError struct {
	Input string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("parse: unrecognized period format %q", e.Input)
}

// UnknownCodeError indicates a two-letter code not defined in the calendar.
type UnknownCodeError struct {
	CalendarID string
	Code       string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("parse: unknown period code %q in calendar %q", e.Code, e.CalendarID)
}

// UnknownPeriodNameError indicates a period name not defined in the calendar.
type UnknownPeriodNameError struct {
	CalendarID string
	Name       string
}

func (e *UnknownPeriodNameError) Error() string {
	return fmt.Sprintf("parse: unknown period name %q in calendar %q", e.Name, e.CalendarID)
}

// InvalidNumericFormatError indicates numeric input that is not a valid
// 5- or 6-digit YYYYM encoding.
type InvalidNumericFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidNumericFormatError) Error() string {
	return fmt.Sprintf("parse: invalid numeric period %q: %s", e.Input, e.Reason)
}

// InvalidMonthError indicates a month outside 1-12 in a numeric encoding.
type InvalidMonthError struct {
	Input string
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("parse: month %d out of range 1-12 in %q", e.Month, e.Input)
}
