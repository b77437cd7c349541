package period

import (
	"sort"
	"strings"
)

// Compare orders instances chronologically by start date, which is
// calendar-independent, so instances from different calendars sort
// together. Ties are broken by calendar id, then code, giving a stable
// deterministic total order.
func Compare(a, b Instance) int {
	switch {
	case a.StartDate.Before(b.StartDate):
		return -1
	case a.StartDate.After(b.StartDate):
		return 1
	}
	if c := strings.Compare(a.CalendarID, b.CalendarID); c != 0 {
		return c
	}
	return strings.Compare(a.Code, b.Code)
}

// Less reports whether a orders before b.
func Less(a, b Instance) bool { return Compare(a, b) < 0 }

// Sort sorts instances in place into non-decreasing chronological order.
func Sort(instances []Instance) {
	sort.Slice(instances, func(i, j int) bool {
		return Compare(instances[i], instances[j]) < 0
	})
}
