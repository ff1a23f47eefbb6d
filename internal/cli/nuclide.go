package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"foilplan/internal/nucdata"
)

var nuclideCmd = &cobra.Command{
	Use:   "nuclide <id>",
	Short: "Look up decay data for a nuclide",
	Long: `Look up the half-life and known gamma lines for a nuclide in the active
decay-data source (the built-in table, or the file named by
FOILPLAN_DECAY_DATA).

Identifiers are case-insensitive: Zr97, zr-97 and 97Zr all work.

Examples:
  foilplan nuclide Zr97
  foilplan nuclide in-115m`,
	Args: cobra.ExactArgs(1),
	RunE: runNuclide,
}

func runNuclide(cmd *cobra.Command, args []string) error {
	name, err := nucdata.Canonical(args[0])
	if err != nil {
		return err
	}

	halfLife, err := decayData.HalfLife(name)
	if err != nil {
		return err
	}
	gammas, err := decayData.Gammas(name)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", name)
	fmt.Printf("  Half-life: %.6g s  (%.4g h)\n", halfLife, halfLife/3600)
	fmt.Printf("  Gamma lines:\n")
	for _, g := range gammas {
		fmt.Printf("    %8.2f keV  %6.2f %%\n", g.EnergyKeV, g.BranchPct)
	}
	return nil
}
