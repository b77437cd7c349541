package commands

import (
	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/calendar"
)

var (
	// Global flags
	calendarID  string
	calendarDir string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "acadterm",
	Short: "Academic period calendars: parsing, arithmetic, formatting",
	Long: `acadterm models institution-specific academic periods (semesters,
quarters, terms) over configurable calendars, parses their textual and
numeric encodings, and does period arithmetic.

Examples:
  acadterm parse fa26 20271 "Fall 2026"
  acadterm shift fa26 1
  acadterm seq fa26 fa27
  acadterm current --calendar quarter
  acadterm calendars show semester
  acadterm serve`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&calendarID, "calendar", "semester", "calendar id to resolve against")
	rootCmd.PersistentFlags().StringVar(&calendarDir, "calendar-dir", "", "directory of YAML calendar files to load on top of the presets")
}

// loadRegistry builds a registry with the built-in presets plus any
// calendars from --calendar-dir. CLI commands work on this throwaway
// registry; only serve talks to the database.
func loadRegistry() (*calendar.Registry, error) {
	reg := calendar.NewRegistry()
	if err := calendar.RegisterPresets(reg); err != nil {
		return nil, err
	}
	if calendarDir != "" {
		configs, err := calendar.LoadDir(calendarDir)
		if err != nil {
			return nil, err
		}
		for _, cfg := range configs {
			if err := reg.Register(cfg); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// resolveCalendar loads the registry and returns the selected calendar.
func resolveCalendar() (*calendar.Config, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Get(calendarID)
}
