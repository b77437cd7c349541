package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/parse"
	"github.com/acadterm/acadterm/internal/period"
)

// shiftCmd represents the shift command.
var shiftCmd = &cobra.Command{
	Use:   "shift <input> <n>",
	Short: "Move a period forward or backward by n periods",
	Long: `Parses the input and shifts it by n periods within its calendar's
cycle. Negative n moves backward.

Example:
  acadterm shift fa26 1
  acadterm shift "Spring 2027" -2`,
	Args: cobra.ExactArgs(2),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)
}

func runShift(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("n must be an integer: %w", err)
	}

	cfg, err := resolveCalendar()
	if err != nil {
		return err
	}

	inst, diag, err := parse.Auto(cfg, args[0])
	if err != nil {
		return err
	}
	if diag != nil {
		fmt.Printf("WARNING month %d is ambiguous, defaulted to %s\n", diag.Month, diag.Chosen)
	}

	shifted, err := period.Add(cfg, inst, n)
	if err != nil {
		return err
	}

	fmt.Printf("%s %+d -> %s  ay=%s term=%d start=%s\n",
		inst.String(), n, shifted.String(), shifted.AY(), shifted.Term(),
		shifted.StartDate.Format("2006-01-02"))
	return nil
}
