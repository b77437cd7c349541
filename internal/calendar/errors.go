package calendar

import (
	"fmt"
	"strings"
)

// InvalidConfigError reports every rule a calendar configuration violates.
// Registration rejects the configuration as a whole; nothing is stored.
type InvalidConfigError struct {
	CalendarID string
	Violations []string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("calendar: invalid configuration %q: %s",
		e.CalendarID, strings.Join(e.Violations, "; "))
}

// UnknownCalendarError indicates a calendar id that is not registered.
type UnknownCalendarError struct {
	ID string
}

func (e *UnknownCalendarError) Error() string {
	return fmt.Sprintf("calendar: unknown calendar %q", e.ID)
}

// NoPeriodForMonthError indicates that no period in the calendar starts
// in the given month, so a numeric YYYYM input cannot be resolved.
type NoPeriodForMonthError struct {
	CalendarID string
	Month      int
}

func (e *NoPeriodForMonthError) Error() string {
	return fmt.Sprintf("calendar: no period in %q starts in month %d", e.CalendarID, e.Month)
}

// AmbiguousMonthError indicates that two or more periods start in the same
// month, the calendar has no explicit mapping for it, and strict YYYYM
// resolution is enabled.
type AmbiguousMonthError struct {
	CalendarID string
	Month      int
	Candidates []string
}

func (e *AmbiguousMonthError) Error() string {
	return fmt.Sprintf("calendar: month %d is ambiguous in %q (candidates: %s)",
		e.Month, e.CalendarID, strings.Join(e.Candidates, ", "))
}
