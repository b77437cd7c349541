package parse

import (
	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/period"
)

// Result is one element of a batch parse: either an instance (with an
// optional diagnostic) or an error, never both.
type Result struct {
	Input      string
	Instance   period.Instance
	Diagnostic *calendar.Diagnostic
	Err        error
}

// AutoBatch parses every raw input independently against the same
// configuration snapshot. Results align positionally with the inputs and a
// failed element never suppresses the others.
func AutoBatch(cfg *calendar.Config, raws []string) []Result {
	results := make([]Result, len(raws))
	for i, raw := range raws {
		inst, diag, err := Auto(cfg, raw)
		results[i] = Result{Input: raw, Instance: inst, Diagnostic: diag, Err: err}
	}
	return results
}

// NumericBatch parses every raw input with the numeric parser only.
func NumericBatch(cfg *calendar.Config, raws []string) []Result {
	results := make([]Result, len(raws))
	for i, raw := range raws {
		inst, diag, err := Numeric(cfg, raw)
		results[i] = Result{Input: raw, Instance: inst, Diagnostic: diag, Err: err}
	}
	return results
}
