package calendar

import (
	"fmt"
	"strings"
)

// Reference month lengths in a non-leap year. Periods starting on Feb 29
// are rejected so every instance year yields a valid start date.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Finalize validates the configuration and computes the derived caches
// (cyclic order anchored at the AY start period, month index, code index).
// It returns an *InvalidConfigError listing every violation, or nil.
//
// A finalized Config must not be mutated; the Registry enforces this by
// publishing defensive copies only.
func (c *Config) Finalize() error {
	var violations []string

	if strings.TrimSpace(c.ID) == "" {
		violations = append(violations, "calendar id must not be empty")
	}
	if len(c.Periods) == 0 {
		violations = append(violations, "calendar must define at least one period")
	}

	seenName := make(map[string]bool, len(c.Periods))
	seenCode := make(map[string]bool, len(c.Periods))
	for i, def := range c.Periods {
		label := def.Name
		if label == "" {
			label = fmt.Sprintf("period #%d", i+1)
		}
		if strings.TrimSpace(def.Name) == "" {
			violations = append(violations, fmt.Sprintf("%s: name must not be empty", label))
		} else if seenName[normalizeName(def.Name)] {
			violations = append(violations, fmt.Sprintf("duplicate period name %q", def.Name))
		}
		seenName[normalizeName(def.Name)] = true

		if !isTwoLetterCode(def.Code) {
			violations = append(violations, fmt.Sprintf("%s: code %q must be exactly 2 ASCII letters", label, def.Code))
		} else if seenCode[strings.ToLower(def.Code)] {
			violations = append(violations, fmt.Sprintf("duplicate period code %q", def.Code))
		}
		seenCode[strings.ToLower(def.Code)] = true

		if def.StartMonth < 1 || def.StartMonth > 12 {
			violations = append(violations, fmt.Sprintf("%s: start_month %d out of range 1-12", label, def.StartMonth))
		} else if def.StartDay < 1 || def.StartDay > daysInMonth[def.StartMonth] {
			violations = append(violations, fmt.Sprintf("%s: start_day %d invalid for month %d", label, def.StartDay, def.StartMonth))
		}
	}

	anchor := -1
	for i, def := range c.Periods {
		if strings.EqualFold(def.Name, c.AYStartPeriod) {
			anchor = i
			break
		}
	}
	if anchor < 0 && len(c.Periods) > 0 {
		violations = append(violations, fmt.Sprintf("ay_start %q does not name a defined period", c.AYStartPeriod))
	}

	for month, name := range c.MonthMap {
		if month < 1 || month > 12 {
			violations = append(violations, fmt.Sprintf("month_map: month %d out of range 1-12", month))
		}
		if !c.hasPeriodNamed(name) {
			violations = append(violations, fmt.Sprintf("month_map: %q does not name a defined period", name))
		}
	}

	if len(violations) > 0 {
		return &InvalidConfigError{CalendarID: c.ID, Violations: violations}
	}

	k := len(c.Periods)
	c.cycle = make([]int, k)
	c.pos = make(map[string]int, k)
	c.byCode = make(map[string]int, k)
	c.byMonth = make(map[int][]int)
	for p := 0; p < k; p++ {
		idx := (anchor + p) % k
		c.cycle[p] = idx
		c.pos[normalizeName(c.Periods[idx].Name)] = p
	}
	for i, def := range c.Periods {
		c.byCode[strings.ToLower(def.Code)] = i
		c.byMonth[def.StartMonth] = append(c.byMonth[def.StartMonth], i)
	}
	return nil
}

func (c *Config) hasPeriodNamed(name string) bool {
	for _, def := range c.Periods {
		if strings.EqualFold(def.Name, name) {
			return true
		}
	}
	return false
}

func isTwoLetterCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		ch := code[i]
		if !('a' <= ch && ch <= 'z') && !('A' <= ch && ch <= 'Z') {
			return false
		}
	}
	return true
}
