// Package calendar models institution-specific academic calendars: an
// ordered set of period definitions (semester, quarter, term), the academic
// year anchor, and the resolution rules for the numeric YYYYM encoding.
//
// A Config is immutable once it passes Finalize; the Registry only hands out
// finalized configurations, so readers never need locking.
package calendar

import (
	"regexp"
	"strings"
)

var nameSeparators = regexp.MustCompile(`[\s,_-]+`)

// normalizeName lowercases a period name and collapses separator runs
// (space, comma, hyphen, underscore) to single spaces, so "J-Term",
// "j_term" and "J Term" all name the same period.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(nameSeparators.ReplaceAllString(name, " ")))
}

// PeriodDef describes one recurring period type within a calendar.
type PeriodDef struct {
	// Name is unique within the calendar, case-insensitively.
	Name string `yaml:"name" json:"name"`

	// Code is exactly two ASCII letters, unique within the calendar
	// case-insensitively. Stored as given, matched lowercased.
	Code string `yaml:"code" json:"code"`

	// StartMonth is the month (1-12) the period starts in.
	StartMonth int `yaml:"start_month" json:"start_month"`

	// StartDay is the day of StartMonth the period starts on,
	// validated against a non-leap reference year.
	StartDay int `yaml:"start_day" json:"start_day"`
}

// Diagnostic is a non-fatal finding attached to an otherwise successful
// operation, e.g. an ambiguous month resolved by insertion-order default.
type Diagnostic struct {
	Kind         string   `json:"kind"`
	Month        int      `json:"month"`
	Chosen       string   `json:"chosen,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Diagnostic kinds.
const (
	DiagAmbiguousMonthDefaulted = "ambiguous_month_defaulted"
	DiagAmbiguousMonth          = "ambiguous_month"
)

// Config is a full calendar configuration. The model assumes an academic
// year spans at most two consecutive calendar years: the anchor period
// starts in year ay_start, every other period in ay_start+1.
type Config struct {
	// ID is the registry key.
	ID string `yaml:"id" json:"id"`

	// Periods in insertion order. Insertion order is the tie-break order
	// for ambiguous months and the cycle order before re-anchoring.
	Periods []PeriodDef `yaml:"periods" json:"periods"`

	// AYStartPeriod names the period that anchors the academic year
	// (cycle position 0).
	AYStartPeriod string `yaml:"ay_start" json:"ay_start"`

	// StrictYYYYM makes numeric parsing fail on ambiguous months instead
	// of defaulting to the first candidate.
	StrictYYYYM bool `yaml:"yyyym_strict" json:"yyyym_strict"`

	// MonthMap explicitly resolves months shared by several periods.
	MonthMap map[int]string `yaml:"month_map,omitempty" json:"month_map,omitempty"`

	// Derived by Finalize.
	cycle   []int         // cycle position -> index into Periods
	pos     map[string]int // lowercased name -> cycle position
	byCode  map[string]int // lowercased code -> index into Periods
	byMonth map[int][]int  // start month -> indexes, insertion order
}

// PeriodCount returns k, the number of periods per academic year.
func (c *Config) PeriodCount() int { return len(c.Periods) }

// AtCycle returns the period definition at the given cycle position.
// The position is taken modulo the period count.
func (c *Config) AtCycle(pos int) PeriodDef {
	k := len(c.cycle)
	pos = ((pos % k) + k) % k
	return c.Periods[c.cycle[pos]]
}

// CyclePosition returns the cycle position of the named period. The name
// is matched case-insensitively with separator normalization.
func (c *Config) CyclePosition(name string) (int, bool) {
	p, ok := c.pos[normalizeName(name)]
	return p, ok
}

// ByCode looks up a period by its two-letter code, case-insensitively,
// returning the definition and its cycle position.
func (c *Config) ByCode(code string) (PeriodDef, int, bool) {
	i, ok := c.byCode[strings.ToLower(code)]
	if !ok {
		return PeriodDef{}, 0, false
	}
	def := c.Periods[i]
	pos := c.pos[normalizeName(def.Name)]
	return def, pos, true
}

// ByName looks up a period by name, case-insensitively with separator
// normalization.
func (c *Config) ByName(name string) (PeriodDef, int, bool) {
	pos, ok := c.pos[normalizeName(name)]
	if !ok {
		return PeriodDef{}, 0, false
	}
	return c.AtCycle(pos), pos, true
}

// MonthCandidates returns the periods starting in the given month,
// in insertion order.
func (c *Config) MonthCandidates(month int) []PeriodDef {
	idxs := c.byMonth[month]
	if len(idxs) == 0 {
		return nil
	}
	defs := make([]PeriodDef, len(idxs))
	for i, idx := range idxs {
		defs[i] = c.Periods[idx]
	}
	return defs
}

// AmbiguousMonths reports every start month shared by two or more periods
// that has no explicit MonthMap entry, as non-fatal diagnostics. The report
// is independent of StrictYYYYM so configurations can be audited up front.
func (c *Config) AmbiguousMonths() []Diagnostic {
	var diags []Diagnostic
	for month := 1; month <= 12; month++ {
		idxs := c.byMonth[month]
		if len(idxs) < 2 {
			continue
		}
		if _, mapped := c.MonthMap[month]; mapped {
			continue
		}
		names := make([]string, len(idxs))
		for i, idx := range idxs {
			names[i] = c.Periods[idx].Name
		}
		diags = append(diags, Diagnostic{
			Kind:         DiagAmbiguousMonth,
			Month:        month,
			Alternatives: names,
		})
	}
	return diags
}

// clone returns a deep copy with derived fields reset, so the copy can be
// modified and re-finalized without touching the published original.
func (c *Config) clone() *Config {
	cp := &Config{
		ID:            c.ID,
		Periods:       append([]PeriodDef(nil), c.Periods...),
		AYStartPeriod: c.AYStartPeriod,
		StrictYYYYM:   c.StrictYYYYM,
	}
	if c.MonthMap != nil {
		cp.MonthMap = make(map[int]string, len(c.MonthMap))
		for m, n := range c.MonthMap {
			cp.MonthMap[m] = n
		}
	}
	return cp
}
