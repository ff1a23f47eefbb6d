package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"foilplan/internal/counting"
)

var (
	effEnergy     float64
	effFoilRadius float64
	effDetRadius  float64
	effMinDist    float64
	effSourceRate float64
	effCurve      []float64
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Run the detector placement and efficiency estimate alone",
	Long: `Estimate the absolute detection efficiency at a gamma line and find the
closest counting distance with acceptable dead time.

The source rate is the gamma emission rate at the line of interest
(activity times branching fraction).

Examples:
  foilplan efficiency --energy 743.36 --foil-radius 0.635 --detector-radius 3.245 --source-rate 0.64`,
	RunE: runEfficiency,
}

func init() {
	efficiencyCmd.Flags().Float64Var(&effEnergy, "energy", 0, "gamma energy in keV")
	efficiencyCmd.Flags().Float64Var(&effFoilRadius, "foil-radius", 0, "foil radius in cm")
	efficiencyCmd.Flags().Float64Var(&effDetRadius, "detector-radius", 0, "detector radius in cm")
	efficiencyCmd.Flags().Float64Var(&effMinDist, "min-distance", 1, "minimum counting distance in cm")
	efficiencyCmd.Flags().Float64Var(&effSourceRate, "source-rate", 0, "photons/s at the line of interest")
	efficiencyCmd.Flags().Float64SliceVar(&effCurve, "curve", nil, "response fit coefficients a,b,c,d (default: detector #2)")
}

func runEfficiency(cmd *cobra.Command, args []string) error {
	curve := counting.DefaultResponse
	if len(effCurve) > 0 {
		if len(effCurve) != 4 {
			return fmt.Errorf("--curve needs exactly 4 coefficients, got %d", len(effCurve))
		}
		curve = counting.ResponseCurve{A: effCurve[0], B: effCurve[1], C: effCurve[2], D: effCurve[3]}
	}

	p, err := counting.PlaceDetector(effEnergy, curve, effFoilRadius, effDetRadius, effMinDist, effSourceRate)
	if err != nil {
		return err
	}

	fmt.Printf("Counting distance:    %g cm\n", p.Distance)
	fmt.Printf("Absolute efficiency:  %.6g\n", p.Efficiency)
	fmt.Printf("Dead-time loss:       %.3g %%\n", p.LossFrac*100)
	if p.Hot {
		fmt.Println("warning: foil still exceeds 1% dead-time loss at the maximum distance; let it cool before counting")
	}
	return nil
}
