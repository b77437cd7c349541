package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/parse"
	"github.com/acadterm/acadterm/internal/period"
)

var seqStep int

// seqCmd represents the seq command.
var seqCmd = &cobra.Command{
	Use:   "seq <from> <to>",
	Short: "Generate the period sequence between two periods",
	Long: `Prints the inclusive sequence of periods from <from> to <to>,
advancing by --step periods each time. A step pointing away from <to>
yields an empty sequence.

Example:
  acadterm seq fa26 fa27
  acadterm seq fa27 fa26 --step -1`,
	Args: cobra.ExactArgs(2),
	RunE: runSeq,
}

func init() {
	rootCmd.AddCommand(seqCmd)
	seqCmd.Flags().IntVar(&seqStep, "step", 1, "periods to advance per element (non-zero)")
}

func runSeq(cmd *cobra.Command, args []string) error {
	cfg, err := resolveCalendar()
	if err != nil {
		return err
	}

	from, _, err := parse.Auto(cfg, args[0])
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, _, err := parse.Auto(cfg, args[1])
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	seq, err := period.Seq(cfg, from, to, seqStep)
	if err != nil {
		return err
	}

	for _, p := range seq {
		key, _ := period.Format(p, period.FormatKey)
		fmt.Printf("%-14s %s  ay=%s term=%d start=%s\n",
			key, p.String(), p.AY(), p.Term(), p.StartDate.Format("2006-01-02"))
	}
	fmt.Printf("%d periods\n", len(seq))
	return nil
}
