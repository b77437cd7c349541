package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/parse"
	"github.com/acadterm/acadterm/internal/period"
)

var parseFormat string

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse <input>...",
	Short: "Parse period encodings into canonical periods",
	Long: `Parses one or more period encodings against the selected calendar.
Accepted forms: two-letter code + two-digit year ("fa26"), 5/6-digit
numeric YYYYM ("20268", "202611"), or name + year ("Fall 2026").

Each input is parsed independently; a bad input does not stop the rest.

Example:
  acadterm parse fa26
  acadterm parse 20268 20271 "Spring 2027"
  acadterm parse --format key su27`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "also print one fixed format (key|code|numeric|text|ay_term|iso_date|year_month)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveCalendar()
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range parse.AutoBatch(cfg, args) {
		if res.Err != nil {
			failed++
			fmt.Printf("%-14s ERROR %v\n", res.Input, res.Err)
			continue
		}

		p := res.Instance
		line := fmt.Sprintf("%-14s %s  ay=%s term=%d start=%s",
			res.Input, p.String(), p.AY(), p.Term(), p.StartDate.Format("2006-01-02"))
		if parseFormat != "" {
			formatted, err := period.Format(p, parseFormat)
			if err != nil {
				return err
			}
			line += fmt.Sprintf("  %s=%s", parseFormat, formatted)
		}
		fmt.Println(line)

		if res.Diagnostic != nil {
			fmt.Printf("%-14s WARNING month %d is ambiguous, defaulted to %s (alternatives: %v)\n",
				"", res.Diagnostic.Month, res.Diagnostic.Chosen, res.Diagnostic.Alternatives)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
	return nil
}
