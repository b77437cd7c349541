package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/period"
)

// Every period of every preset calendar must survive
// parse(format(p, kind)) == p for the machine-readable kinds.
func TestRoundTrip_PresetCalendars(t *testing.T) {
	reg := calendar.NewRegistry()
	require.NoError(t, calendar.RegisterPresets(reg))

	for _, id := range reg.List() {
		cfg, err := reg.Get(id)
		require.NoError(t, err)

		for pos := 0; pos < cfg.PeriodCount(); pos++ {
			for _, year := range []int{2001, 2025, 2026, 2027, 2099} {
				p := period.New(cfg, pos, year)

				numeric, err := period.Format(p, period.FormatNumeric)
				require.NoError(t, err)
				got, diag, err := Numeric(cfg, numeric)
				require.NoError(t, err, "%s: numeric %q", id, numeric)
				require.Nil(t, diag, "%s: presets have no ambiguous months", id)
				require.True(t, got.Equal(p), "%s: numeric round-trip of %s via %q", id, p, numeric)

				code, err := period.Format(p, period.FormatCode)
				require.NoError(t, err)
				got, err = Code(cfg, code)
				require.NoError(t, err, "%s: code %q", id, code)
				require.True(t, got.Equal(p), "%s: code round-trip of %s via %q", id, p, code)

				text, err := period.Format(p, period.FormatText)
				require.NoError(t, err)
				got, _, err = Auto(cfg, text)
				require.NoError(t, err, "%s: text %q", id, text)
				require.True(t, got.Equal(p), "%s: text round-trip of %s via %q", id, p, text)
			}
		}
	}
}

// Formatting a parsed instance must reproduce the canonical encoding.
func TestRoundTrip_FormatAfterParse(t *testing.T) {
	cfg := semesterCal(t)

	inst, _, err := Auto(cfg, "20268")
	require.NoError(t, err)
	numeric, err := period.Format(inst, period.FormatNumeric)
	require.NoError(t, err)
	require.Equal(t, "20268", numeric)

	inst, _, err = Auto(cfg, "sp27")
	require.NoError(t, err)
	code, err := period.Format(inst, period.FormatCode)
	require.NoError(t, err)
	require.Equal(t, "sp27", code)
}
