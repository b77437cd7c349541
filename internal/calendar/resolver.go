package calendar

// Resolve maps a start month to the period definition the numeric YYYYM
// encoding refers to, with its cycle position.
//
// Resolution is deterministic: the same configuration and month always
// produce the same decision and the same diagnostic. An ambiguous month is
// decided by, in order: the calendar's explicit month mapping, a strict
// failure when StrictYYYYM is set, or the first candidate in insertion
// order with an attached diagnostic the caller must surface as a warning.
func Resolve(cfg *Config, month int) (PeriodDef, int, *Diagnostic, error) {
	candidates := cfg.MonthCandidates(month)

	switch len(candidates) {
	case 0:
		return PeriodDef{}, 0, nil, &NoPeriodForMonthError{CalendarID: cfg.ID, Month: month}
	case 1:
		pos, _ := cfg.CyclePosition(candidates[0].Name)
		return candidates[0], pos, nil, nil
	}

	if mapped, ok := cfg.MonthMap[month]; ok {
		def, pos, _ := cfg.ByName(mapped)
		return def, pos, nil, nil
	}

	names := make([]string, len(candidates))
	for i, def := range candidates {
		names[i] = def.Name
	}

	if cfg.StrictYYYYM {
		return PeriodDef{}, 0, nil, &AmbiguousMonthError{
			CalendarID: cfg.ID,
			Month:      month,
			Candidates: names,
		}
	}

	chosen := candidates[0]
	pos, _ := cfg.CyclePosition(chosen.Name)
	return chosen, pos, &Diagnostic{
		Kind:         DiagAmbiguousMonthDefaulted,
		Month:        month,
		Chosen:       chosen.Name,
		Alternatives: names[1:],
	}, nil
}
