package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/period"
)

var currentDate string

// currentCmd represents the current command.
var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the period in effect today",
	Long: `Prints the period in effect for the selected calendar: the period
with the latest start date not after today (or --date).

Example:
  acadterm current
  acadterm current --calendar quarter --date 2027-08-23`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.Flags().StringVar(&currentDate, "date", "", "evaluate at this date (YYYY-MM-DD) instead of today")
}

func runCurrent(cmd *cobra.Command, args []string) error {
	now := time.Now().UTC()
	if currentDate != "" {
		parsed, err := time.Parse("2006-01-02", currentDate)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		now = parsed
	}

	cfg, err := resolveCalendar()
	if err != nil {
		return err
	}

	p := period.Current(cfg, now)
	fmt.Printf("%s  ay=%s term=%d start=%s\n",
		p.String(), p.AY(), p.Term(), p.StartDate.Format("2006-01-02"))
	return nil
}
