// Package parse turns textual and numeric period encodings into period
// instances against one resolved calendar configuration.
//
// Three formats are supported:
//
//	code    - two letters + two digits, e.g. "fa26"
//	numeric - 5/6-digit YYYYM, e.g. "20268", "202611"
//	text    - period name + 4-digit year, e.g. "Fall 2026", "2027, spring"
//
// Auto classifies raw input through that chain in priority order. Parsing
// never mutates the configuration; a Diagnostic is attached when an
// ambiguous month was resolved by insertion-order default.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/period"
)

var (
	codePattern    = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{2}$`)
	numericPattern = regexp.MustCompile(`^[0-9]{5,6}$`)
	yearPattern    = regexp.MustCompile(`^[0-9]{4}$`)
	separators     = regexp.MustCompile(`[\s,_-]+`)
)

// Auto classifies raw and delegates to the matching parser. The returned
// Diagnostic is non-nil only for numeric input resolved through an
// ambiguous-month default.
func Auto(cfg *calendar.Config, raw string) (period.Instance, *calendar.Diagnostic, error) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case codePattern.MatchString(trimmed):
		inst, err := Code(cfg, trimmed)
		return inst, nil, err
	case numericPattern.MatchString(trimmed):
		return Numeric(cfg, trimmed)
	}

	if name, _, ok := splitText(trimmed); ok {
		if _, _, known := cfg.ByName(name); known {
			inst, err := Text(cfg, trimmed)
			return inst, nil, err
		}
	}
	return period.Instance{}, nil, &UnrecognizedFormatError{Input: raw}
}

// Code parses the two-letter-code + two-digit-year form. The year digits
// are interpreted as 2000-2099.
func Code(cfg *calendar.Config, raw string) (period.Instance, error) {
	trimmed := strings.TrimSpace(raw)
	if !codePattern.MatchString(trimmed) {
		return period.Instance{}, &UnrecognizedFormatError{Input: raw}
	}

	code := trimmed[:2]
	_, pos, ok := cfg.ByCode(code)
	if !ok {
		return period.Instance{}, &UnknownCodeError{CalendarID: cfg.ID, Code: code}
	}

	nn, _ := strconv.Atoi(trimmed[2:])
	return period.New(cfg, pos, 2000+nn), nil
}

// Numeric parses the 5/6-digit YYYYM form: four year digits followed by
// the start month. Months 1-9 must use the 5-digit form; a 6-digit input
// with a leading-zero month is malformed.
func Numeric(cfg *calendar.Config, raw string) (period.Instance, *calendar.Diagnostic, error) {
	trimmed := strings.TrimSpace(raw)
	if !numericPattern.MatchString(trimmed) {
		return period.Instance{}, nil, &InvalidNumericFormatError{
			Input: raw, Reason: "expected 5 or 6 digits (YYYYM or YYYYMM)",
		}
	}

	year, _ := strconv.Atoi(trimmed[:4])
	monthStr := trimmed[4:]
	if len(monthStr) == 2 && monthStr[0] == '0' {
		return period.Instance{}, nil, &InvalidNumericFormatError{
			Input: raw, Reason: "months 1-9 must use the 5-digit form",
		}
	}
	month, _ := strconv.Atoi(monthStr)
	if month < 1 || month > 12 {
		return period.Instance{}, nil, &InvalidMonthError{Input: raw, Month: month}
	}

	_, pos, diag, err := calendar.Resolve(cfg, month)
	if err != nil {
		return period.Instance{}, nil, err
	}
	return period.New(cfg, pos, year), diag, nil
}

// Text parses the name + 4-digit-year form. Separator runs (space, comma,
// hyphen, underscore) are normalized, the tokens may appear in either
// order, and the name match is case-insensitive.
func Text(cfg *calendar.Config, raw string) (period.Instance, error) {
	name, year, ok := splitText(raw)
	if !ok {
		return period.Instance{}, &UnrecognizedFormatError{Input: raw}
	}

	_, pos, known := cfg.ByName(name)
	if !known {
		return period.Instance{}, &UnknownPeriodNameError{CalendarID: cfg.ID, Name: name}
	}
	return period.New(cfg, pos, year), nil
}

// splitText normalizes separators, extracts the first 4-digit token as the
// year, and rejoins the remaining tokens as the name. Multi-word period
// names ("J Term") survive because the name is rejoined with single
// spaces, the same normalization applied to calendar names by ByName.
func splitText(raw string) (name string, year int, ok bool) {
	tokens := separators.Split(strings.TrimSpace(raw), -1)

	var nameTokens []string
	yearFound := false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if !yearFound && yearPattern.MatchString(tok) {
			year, _ = strconv.Atoi(tok)
			yearFound = true
			continue
		}
		nameTokens = append(nameTokens, tok)
	}
	if !yearFound || len(nameTokens) == 0 {
		return "", 0, false
	}
	return strings.Join(nameTokens, " "), year, true
}
