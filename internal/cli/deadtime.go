package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"foilplan/internal/counting"
)

var (
	deadtimeRate  float64
	deadtimeTau   float64
	deadtimeModel string
)

var deadtimeCmd = &cobra.Command{
	Use:   "deadtime",
	Short: "Correct a measured count rate for dead-time losses",
	Long: `Recover the true interaction rate from a rate the counting electronics
actually recorded, under either dead-time model.

Examples:
  foilplan deadtime --rate 90909 --tau 1e-6
  foilplan deadtime --rate 30000 --model paralyzable`,
	RunE: runDeadtime,
}

func init() {
	deadtimeCmd.Flags().Float64Var(&deadtimeRate, "rate", 0, "measured count rate in counts/s")
	deadtimeCmd.Flags().Float64Var(&deadtimeTau, "tau", counting.DeadTimeConst, "dead time constant in seconds")
	deadtimeCmd.Flags().StringVar(&deadtimeModel, "model", "paralyzable", "dead-time model (paralyzable, nonparalyzable)")
}

func runDeadtime(cmd *cobra.Command, args []string) error {
	var n float64
	var err error
	switch deadtimeModel {
	case "paralyzable":
		n, err = counting.TrueRateParalyzable(deadtimeRate, deadtimeTau)
	case "nonparalyzable":
		n, err = counting.TrueRateNonparalyzable(deadtimeRate, deadtimeTau)
	default:
		return fmt.Errorf("unknown dead-time model %q (want paralyzable or nonparalyzable)", deadtimeModel)
	}
	if err != nil {
		return err
	}

	loss := 0.0
	if n > 0 {
		loss = (n - deadtimeRate) / n * 100
	}
	fmt.Fprintf(cmd.OutOrStdout(), "True interaction rate: %.6g counts/s\n", n)
	fmt.Fprintf(cmd.OutOrStdout(), "Dead-time loss:        %.3g %%\n", loss)
	return nil
}
