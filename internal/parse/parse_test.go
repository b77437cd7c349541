package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadterm/acadterm/internal/calendar"
)

func semesterCal(t *testing.T, mutate ...func(*calendar.Config)) *calendar.Config {
	t.Helper()
	cfg := &calendar.Config{
		ID: "semester",
		Periods: []calendar.PeriodDef{
			{Name: "Fall", Code: "fa", StartMonth: 8, StartDay: 23},
			{Name: "Spring", Code: "sp", StartMonth: 1, StartDay: 15},
			{Name: "Summer", Code: "su", StartMonth: 6, StartDay: 1},
		},
		AYStartPeriod: "Fall",
	}
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Finalize())
	return cfg
}

func withJTerm(cfg *calendar.Config) {
	cfg.Periods = append(cfg.Periods, calendar.PeriodDef{Name: "J-Term", Code: "jt", StartMonth: 1, StartDay: 2})
}

func TestCode(t *testing.T) {
	cfg := semesterCal(t)

	inst, err := Code(cfg, "fa26")
	require.NoError(t, err)
	assert.Equal(t, "Fall 2026", inst.String())
	assert.Equal(t, "2026-27", inst.AY())

	// Case-insensitive lookup.
	inst, err = Code(cfg, "SP27")
	require.NoError(t, err)
	assert.Equal(t, "Spring 2027", inst.String())
	assert.Equal(t, "2026-27", inst.AY())

	// Year digits map to 2000-2099.
	inst, err = Code(cfg, "su00")
	require.NoError(t, err)
	assert.Equal(t, 2000, inst.Year)
}

func TestCode_Unknown(t *testing.T) {
	cfg := semesterCal(t)

	_, err := Code(cfg, "xx26")
	var unknown *UnknownCodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "xx", unknown.Code)
}

func TestNumeric(t *testing.T) {
	cfg := semesterCal(t)

	inst, diag, err := Numeric(cfg, "20268")
	require.NoError(t, err)
	assert.Nil(t, diag)
	assert.Equal(t, "Fall 2026", inst.String())
	assert.Equal(t, "2026-27", inst.AY())

	// Month 1 resolves uniquely to Spring even under strict mode.
	strict := semesterCal(t, func(c *calendar.Config) { c.StrictYYYYM = true })
	inst, diag, err = Numeric(strict, "20271")
	require.NoError(t, err)
	assert.Nil(t, diag)
	assert.Equal(t, "Spring 2027", inst.String())
	assert.Equal(t, "2026-27", inst.AY())
}

func TestNumeric_SixDigits(t *testing.T) {
	cfg := semesterCal(t, func(c *calendar.Config) {
		c.Periods = append(c.Periods, calendar.PeriodDef{Name: "Winter", Code: "wi", StartMonth: 12, StartDay: 1})
	})

	inst, diag, err := Numeric(cfg, "202612")
	require.NoError(t, err)
	assert.Nil(t, diag)
	assert.Equal(t, "Winter 2026", inst.String())
}

func TestNumeric_Malformed(t *testing.T) {
	cfg := semesterCal(t)

	var badFormat *InvalidNumericFormatError
	for _, raw := range []string{"2026", "2026081", "20a68"} {
		_, _, err := Numeric(cfg, raw)
		require.ErrorAs(t, err, &badFormat, "input %q", raw)
	}

	// Leading-zero month in the 6-digit form: months 1-9 must be 5 digits.
	_, _, err := Numeric(cfg, "202608")
	require.ErrorAs(t, err, &badFormat)

	var badMonth *InvalidMonthError
	_, _, err = Numeric(cfg, "202613")
	require.ErrorAs(t, err, &badMonth)
	assert.Equal(t, 13, badMonth.Month)

	_, _, err = Numeric(cfg, "20260")
	require.ErrorAs(t, err, &badMonth)
}

func TestNumeric_NoPeriodForMonth(t *testing.T) {
	cfg := semesterCal(t)

	_, _, err := Numeric(cfg, "20263")
	var noPeriod *calendar.NoPeriodForMonthError
	require.ErrorAs(t, err, &noPeriod)
}

func TestNumeric_AmbiguousMonth(t *testing.T) {
	// Default mode surfaces a diagnostic and picks insertion order.
	cfg := semesterCal(t, withJTerm)
	inst, diag, err := Numeric(cfg, "20271")
	require.NoError(t, err)
	assert.Equal(t, "Spring 2027", inst.String())
	require.NotNil(t, diag)
	assert.Equal(t, calendar.DiagAmbiguousMonthDefaulted, diag.Kind)

	// Strict mode fails instead.
	strict := semesterCal(t, withJTerm, func(c *calendar.Config) { c.StrictYYYYM = true })
	_, _, err = Numeric(strict, "20271")
	var ambiguous *calendar.AmbiguousMonthError
	require.ErrorAs(t, err, &ambiguous)
}

func TestText(t *testing.T) {
	cfg := semesterCal(t, withJTerm)

	cases := []struct {
		raw  string
		want string
	}{
		{"Fall 2026", "Fall 2026"},
		{"fall 2026", "Fall 2026"},
		{"2026 Fall", "Fall 2026"},
		{"spring, 2027", "Spring 2027"},
		{"Summer-2027", "Summer 2027"},
		{"summer_2027", "Summer 2027"},
		{"J-Term 2027", "J-Term 2027"},
		{"j term 2027", "J-Term 2027"},
		{"2027 J_Term", "J-Term 2027"},
	}
	for _, tc := range cases {
		inst, err := Text(cfg, tc.raw)
		require.NoError(t, err, "input %q", tc.raw)
		assert.Equal(t, tc.want, inst.String(), "input %q", tc.raw)
	}
}

func TestText_Errors(t *testing.T) {
	cfg := semesterCal(t)

	_, err := Text(cfg, "Autumn 2026")
	var unknownName *UnknownPeriodNameError
	require.ErrorAs(t, err, &unknownName)
	assert.Equal(t, "Autumn", unknownName.Name)

	var unrecognized *UnrecognizedFormatError
	_, err = Text(cfg, "Fall")
	require.ErrorAs(t, err, &unrecognized, "missing year token")
	_, err = Text(cfg, "2026")
	require.ErrorAs(t, err, &unrecognized, "missing name token")
}

func TestAuto_Dispatch(t *testing.T) {
	cfg := semesterCal(t)

	cases := []struct {
		raw  string
		want string
	}{
		{"fa26", "Fall 2026"},
		{" fa26 ", "Fall 2026"},
		{"20268", "Fall 2026"},
		{"20271", "Spring 2027"},
		{"Fall 2026", "Fall 2026"},
		{"2027, summer", "Summer 2027"},
	}
	for _, tc := range cases {
		inst, _, err := Auto(cfg, tc.raw)
		require.NoError(t, err, "input %q", tc.raw)
		assert.Equal(t, tc.want, inst.String(), "input %q", tc.raw)
	}
}

func TestAuto_Unrecognized(t *testing.T) {
	cfg := semesterCal(t)

	var unrecognized *UnrecognizedFormatError
	for _, raw := range []string{"", "fall", "Autumn 2026", "f26", "fa2026x", "banana"} {
		_, _, err := Auto(cfg, raw)
		require.ErrorAs(t, err, &unrecognized, "input %q", raw)
	}
}

func TestAuto_CodeTakesPriorityOverText(t *testing.T) {
	// "fa26" shape always goes to the code parser, never text.
	cfg := semesterCal(t)
	inst, _, err := Auto(cfg, "fa26")
	require.NoError(t, err)
	assert.Equal(t, "fa", inst.Code)
}
