package period

import (
	"fmt"
	"strings"
)

// Fixed output formats. "numeric" and "code" round-trip through the
// parsers: numeric zero-pads the month only for 10-12, matching the
// 5/6-digit YYYYM encoding the numeric parser accepts.
const (
	FormatKey       = "key"
	FormatCode      = "code"
	FormatNumeric   = "numeric"
	FormatText      = "text"
	FormatAYTerm    = "ay_term"
	FormatISODate   = "iso_date"
	FormatYearMonth = "year_month"
)

// FormatKinds lists the supported Format kinds.
func FormatKinds() []string {
	return []string{
		FormatKey, FormatCode, FormatNumeric, FormatText,
		FormatAYTerm, FormatISODate, FormatYearMonth,
	}
}

// Format renders the instance in one of the fixed formats.
func Format(p Instance, kind string) (string, error) {
	switch kind {
	case FormatKey:
		numeric, _ := Format(p, FormatNumeric)
		return fmt.Sprintf("%s_%s_%s", p.ayShort(), numeric, strings.ToLower(p.Name)), nil
	case FormatCode:
		return fmt.Sprintf("%s%02d", strings.ToLower(p.Code), p.Year%100), nil
	case FormatNumeric:
		// Months 1-9 use the 5-digit form, 10-12 the 6-digit form.
		return fmt.Sprintf("%d%d", p.Year, int(p.StartDate.Month())), nil
	case FormatText:
		return fmt.Sprintf("%s %d", p.Name, p.Year), nil
	case FormatAYTerm:
		return fmt.Sprintf("%s T%d", p.AY(), p.Term()), nil
	case FormatISODate:
		return p.StartDate.Format("2006-01-02"), nil
	case FormatYearMonth:
		return fmt.Sprintf("%d-%02d", p.Year, int(p.StartDate.Month())), nil
	default:
		return "", &UnknownFormatKindError{Kind: kind}
	}
}

// ayShort is the short academic-year label, e.g. "26-27".
func (p Instance) ayShort() string {
	return fmt.Sprintf("%02d-%02d", p.AYStart%100, p.AYEnd%100)
}
