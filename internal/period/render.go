package period

import (
	"fmt"
	"strconv"
	"strings"
)

// Render substitutes {placeholder} tokens in template with the instance's
// accessor values. Unknown placeholders are left untouched so callers can
// spot typos in their display templates.
//
// Placeholders: ay, ay_short, ay_long, ay_start, ay_end, name, code, year,
// term, month, month_pad, date, year_month.
func Render(p Instance, template string) string {
	month := int(p.StartDate.Month())
	date, _ := Format(p, FormatISODate)
	yearMonth, _ := Format(p, FormatYearMonth)

	r := strings.NewReplacer(
		"{ay}", p.AY(),
		"{ay_short}", p.ayShort(),
		"{ay_long}", fmt.Sprintf("%d-%d", p.AYStart, p.AYEnd),
		"{ay_start}", strconv.Itoa(p.AYStart),
		"{ay_end}", strconv.Itoa(p.AYEnd),
		"{name}", p.Name,
		"{code}", p.Code,
		"{year}", strconv.Itoa(p.Year),
		"{term}", strconv.Itoa(p.Term()),
		"{month}", strconv.Itoa(month),
		"{month_pad}", fmt.Sprintf("%02d", month),
		"{date}", date,
		"{year_month}", yearMonth,
	)
	return r.Replace(template)
}
