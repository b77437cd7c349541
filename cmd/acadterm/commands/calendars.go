package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// calendarsCmd represents the calendars command.
var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "Inspect the available calendars",
	Long: `Lists and inspects the calendars visible to the CLI: the built-in
presets plus anything loaded from --calendar-dir.

Example:
  acadterm calendars
  acadterm calendars show semester
  acadterm calendars validate quarter`,
	RunE: runCalendarsList,
}

// calendarsShowCmd prints one calendar's configuration.
var calendarsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one calendar's period definitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarsShow,
}

// calendarsValidateCmd re-validates a calendar and reports ambiguous months.
var calendarsValidateCmd = &cobra.Command{
	Use:   "validate <id>",
	Short: "Validate a calendar and report ambiguous months",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarsValidate,
}

func init() {
	rootCmd.AddCommand(calendarsCmd)
	calendarsCmd.AddCommand(calendarsShowCmd)
	calendarsCmd.AddCommand(calendarsValidateCmd)
}

func runCalendarsList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	for _, id := range reg.List() {
		cfg, err := reg.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %d periods, ay starts with %s\n", id, cfg.PeriodCount(), cfg.AYStartPeriod)
	}
	return nil
}

func runCalendarsShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("calendar %s (yyyym_strict=%v)\n", cfg.ID, cfg.StrictYYYYM)
	for pos := 0; pos < cfg.PeriodCount(); pos++ {
		def := cfg.AtCycle(pos)
		fmt.Printf("  term %d: %-10s code=%s starts %02d-%02d\n",
			pos+1, def.Name, def.Code, def.StartMonth, def.StartDay)
	}
	for month, name := range cfg.MonthMap {
		fmt.Printf("  month %d explicitly maps to %s\n", month, name)
	}
	return nil
}

func runCalendarsValidate(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	diags, err := reg.Validate(args[0])
	if err != nil {
		return err
	}

	if len(diags) == 0 {
		fmt.Printf("%s: ok, no ambiguous months\n", args[0])
		return nil
	}
	for _, d := range diags {
		fmt.Printf("%s: month %d is shared by %v and has no explicit mapping\n",
			args[0], d.Month, d.Alternatives)
	}
	return nil
}
