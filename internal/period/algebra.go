package period

import (
	"time"

	"github.com/acadterm/acadterm/internal/calendar"
)

// Period arithmetic maps every instance to an absolute index
// ay_start*k + cycle_position, where k is the calendar's period count.
// The mapping is a bijection, so adding n periods is integer addition on
// the index followed by reconstruction.

// absIndex returns the instance's absolute index for a k-period calendar.
func (p Instance) absIndex(k int) int {
	return p.AYStart*k + p.cyclePos
}

// fromAbsIndex reconstructs the instance at an absolute index. The
// Euclidean remainder keeps cycle positions non-negative for negative
// indexes.
func fromAbsIndex(cfg *calendar.Config, idx int) Instance {
	k := cfg.PeriodCount()
	pos := ((idx % k) + k) % k
	ayStart := (idx - pos) / k

	year := ayStart
	if pos != 0 {
		year = ayStart + 1
	}
	return New(cfg, pos, year)
}

// Add returns the instance n periods after p (before, for negative n).
func Add(cfg *calendar.Config, p Instance, n int) (Instance, error) {
	if err := p.checkCalendar(cfg); err != nil {
		return Instance{}, err
	}
	return fromAbsIndex(cfg, p.absIndex(cfg.PeriodCount())+n), nil
}

// Sub returns the instance n periods before p.
func Sub(cfg *calendar.Config, p Instance, n int) (Instance, error) {
	return Add(cfg, p, -n)
}

// Diff returns the signed number of periods from b to a, i.e. the n for
// which Add(b, n) == a. Both instances must belong to cfg's calendar.
func Diff(cfg *calendar.Config, a, b Instance) (int, error) {
	if err := a.checkCalendar(cfg); err != nil {
		return 0, err
	}
	if err := b.checkCalendar(cfg); err != nil {
		return 0, err
	}
	k := cfg.PeriodCount()
	return a.absIndex(k) - b.absIndex(k), nil
}

// Seq returns the inclusive sequence from `from` to `to`, advancing by
// `step` periods. A zero step is an error; a step whose sign points away
// from `to` yields an empty sequence.
func Seq(cfg *calendar.Config, from, to Instance, step int) ([]Instance, error) {
	if step == 0 {
		return nil, &InvalidStepError{}
	}
	d, err := Diff(cfg, to, from)
	if err != nil {
		return nil, err
	}
	if (step > 0 && d < 0) || (step < 0 && d > 0) {
		return []Instance{}, nil
	}

	out := make([]Instance, 0, d/step+1)
	k := cfg.PeriodCount()
	start := from.absIndex(k)
	end := to.absIndex(k)
	for idx := start; (step > 0 && idx <= end) || (step < 0 && idx >= end); idx += step {
		out = append(out, fromAbsIndex(cfg, idx))
	}
	return out, nil
}

// Current returns the period in effect at the given time: the instance
// with the latest start date not after now. Used by the rollover job and
// the CLI's current command.
func Current(cfg *calendar.Config, now time.Time) Instance {
	k := cfg.PeriodCount()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// The current period's absolute index is within one cycle of the
	// anchor instance for this calendar year.
	best := fromAbsIndex(cfg, (now.Year()-1)*k)
	for idx := (now.Year() - 1) * k; idx <= (now.Year()+1)*k; idx++ {
		inst := fromAbsIndex(cfg, idx)
		if !inst.StartDate.After(day) {
			best = inst
		}
	}
	return best
}
