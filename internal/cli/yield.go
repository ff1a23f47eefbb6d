package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"foilplan/internal/physics"
)

var (
	yieldIsotope  string
	yieldHalfLife float64
	yieldRate     float64
	yieldSource   float64
	yieldTime     float64
	yieldRadius   float64
	yieldHeight   float64
	yieldDelay    float64
)

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Compute the activation yield alone",
	Long: `Compute the number of product atoms and the activity at the start of
counting, without running the full plan.

Examples:
  foilplan yield --isotope Zr97 --rate 2.03e-9 --source 9.94e9 \
    --time 57600 --radius 0.635 --height 0.05593 --delay 360`,
	RunE: runYield,
}

func init() {
	yieldCmd.Flags().StringVar(&yieldIsotope, "isotope", "", "product nuclide, e.g. Zr97")
	yieldCmd.Flags().Float64Var(&yieldHalfLife, "half-life", 0, "half-life override in seconds (default: look it up)")
	yieldCmd.Flags().Float64Var(&yieldRate, "rate", 0, "reaction rate per source particle per cm³")
	yieldCmd.Flags().Float64Var(&yieldSource, "source", 0, "source strength in particles/s")
	yieldCmd.Flags().Float64Var(&yieldTime, "time", 0, "irradiation duration in seconds")
	yieldCmd.Flags().Float64Var(&yieldRadius, "radius", 0, "foil radius in cm")
	yieldCmd.Flags().Float64Var(&yieldHeight, "height", 0, "foil height in cm")
	yieldCmd.Flags().Float64Var(&yieldDelay, "delay", 0, "post-irradiation decay delay in seconds")
}

func runYield(cmd *cobra.Command, args []string) error {
	halfLife := yieldHalfLife
	if halfLife == 0 {
		if yieldIsotope == "" {
			return fmt.Errorf("either --isotope or --half-life is required")
		}
		var err error
		halfLife, err = decayData.HalfLife(yieldIsotope)
		if err != nil {
			return err
		}
	}

	vol := math.Pi * yieldRadius * yieldRadius * yieldHeight
	atoms, err := physics.ProductionDecay(halfLife, 0, yieldTime, yieldRate, yieldSource, vol, yieldDelay)
	if err != nil {
		return err
	}
	activity, err := physics.Activity(halfLife, atoms, 0)
	if err != nil {
		return err
	}

	logger.Debug("yield computed", "isotope", yieldIsotope, "half_life_s", halfLife, "atoms", atoms)

	fmt.Printf("Atoms at count start:  %.6g\n", atoms)
	fmt.Printf("Starting activity:     %.6g Bq\n", activity)
	return nil
}
