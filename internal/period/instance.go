// Package period defines the period instance value object and the
// arithmetic, sequencing, ordering, and formatting operations over it.
//
// An Instance is immutable; every operation returns a new value. Operations
// that depend on the calendar take the resolved *calendar.Config and verify
// it matches the instance's CalendarID, so a stale instance whose calendar
// was re-registered under different semantics cannot silently drift.
package period

import (
	"fmt"
	"time"

	"github.com/acadterm/acadterm/internal/calendar"
)

// Instance is one concrete occurrence of a period definition in a
// specific year.
type Instance struct {
	// Name and Code identify the period definition within its calendar.
	Name string `json:"name"`
	Code string `json:"code"`

	// Year is the nominal year as written in (or derivable from) the
	// source encoding; it is the calendar year the period starts in.
	Year int `json:"year"`

	// StartDate is the period's start, a UTC civil date.
	StartDate time.Time `json:"start_date"`

	// AYStart / AYEnd delimit the academic year; AYEnd is always
	// AYStart + 1.
	AYStart int `json:"ay_start"`
	AYEnd   int `json:"ay_end"`

	// CalendarID back-references the owning calendar in the registry.
	CalendarID string `json:"calendar_id"`

	cyclePos int
}

// New builds an instance of the period at the given cycle position, for the
// given nominal year. Cycle position 0 anchors the academic year, so its
// nominal year is the AY start year; every other position falls in the
// second calendar year of the academic year.
func New(cfg *calendar.Config, pos int, year int) Instance {
	k := cfg.PeriodCount()
	pos = ((pos % k) + k) % k
	def := cfg.AtCycle(pos)

	ayStart := year
	if pos != 0 {
		ayStart = year - 1
	}

	return Instance{
		Name:       def.Name,
		Code:       def.Code,
		Year:       year,
		StartDate:  time.Date(year, time.Month(def.StartMonth), def.StartDay, 0, 0, 0, 0, time.UTC),
		AYStart:    ayStart,
		AYEnd:      ayStart + 1,
		CalendarID: cfg.ID,
		cyclePos:   pos,
	}
}

// Term returns the 1-based position of the instance within its academic
// year (the AY-start period is term 1).
func (p Instance) Term() int { return p.cyclePos + 1 }

// CyclePos returns the 0-based cycle position.
func (p Instance) CyclePos() int { return p.cyclePos }

// AY returns the academic year label, e.g. "2026-27".
func (p Instance) AY() string {
	return fmt.Sprintf("%d-%02d", p.AYStart, p.AYEnd%100)
}

// Equal reports whether two instances denote the same period occurrence.
func (p Instance) Equal(q Instance) bool {
	return p.CalendarID == q.CalendarID &&
		p.cyclePos == q.cyclePos &&
		p.Year == q.Year &&
		p.Name == q.Name &&
		p.Code == q.Code &&
		p.StartDate.Equal(q.StartDate) &&
		p.AYStart == q.AYStart
}

// String renders the instance in its textual form, e.g. "Fall 2026".
func (p Instance) String() string {
	return fmt.Sprintf("%s %d", p.Name, p.Year)
}

// checkCalendar verifies the instance belongs to cfg.
func (p Instance) checkCalendar(cfg *calendar.Config) error {
	if p.CalendarID != cfg.ID {
		return &IncompatibleCalendarError{Have: cfg.ID, Want: p.CalendarID}
	}
	return nil
}
