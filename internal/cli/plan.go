package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"foilplan/internal/config"
	"foilplan/internal/plan"
)

var (
	planConfigPath  string
	planInteractive bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the full counting plan for one foil",
	Long: `Compute the full counting plan for one activated foil: activation yield,
detector distance, absolute efficiency, and the optimal foil and background
counting times.

The experiment record comes from a YAML file, or from an interactive form
with --interactive.

Examples:
  foilplan plan -c zr97.yaml
  foilplan plan --interactive`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planConfigPath, "config", "c", "", "experiment record (YAML)")
	planCmd.Flags().BoolVarP(&planInteractive, "interactive", "i", false, "enter the experiment record interactively")
}

func runPlan(cmd *cobra.Command, args []string) error {
	var exp config.Experiment
	var err error
	switch {
	case planInteractive:
		exp, err = runExperimentForm()
	case planConfigPath != "":
		exp, err = config.LoadExperiment(planConfigPath)
	default:
		return fmt.Errorf("either --config or --interactive is required")
	}
	if err != nil {
		return err
	}

	result, err := plan.Compute(exp, decayData, logger)
	if err != nil {
		return err
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(plan.Render(result, styled))
	return nil
}
