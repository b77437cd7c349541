package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/parse"
	"github.com/acadterm/acadterm/internal/period"
)

var renderTemplate string

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <input>...",
	Short: "Render periods through a display template",
	Long: `Parses each input and substitutes its values into --template.
Placeholders: {ay} {ay_short} {ay_long} {ay_start} {ay_end} {name} {code}
{year} {term} {month} {month_pad} {date} {year_month}.

Example:
  acadterm render fa26 --template "{name} {year} ({ay})"
  acadterm render 20271 --template "AY{ay_start}/{ay_end} term {term} starts {date}"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderTemplate, "template", "{name} {year}", "display template")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveCalendar()
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range parse.AutoBatch(cfg, args) {
		if res.Err != nil {
			failed++
			fmt.Printf("ERROR %s: %v\n", res.Input, res.Err)
			continue
		}
		fmt.Println(period.Render(res.Instance, renderTemplate))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
	return nil
}
