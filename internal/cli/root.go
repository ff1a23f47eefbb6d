// Package cli provides the command-line interface for foilplan.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"foilplan/internal/config"
	"foilplan/internal/nucdata"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Set up once in PersistentPreRunE
	settings   config.Settings
	logger     *slog.Logger
	logCleanup func() error
	decayData  nucdata.Provider
	decayDB    *nucdata.DB
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "foilplan",
	Short: "Optimal gamma-counting times for activated foils",
	Long: `Foilplan computes how long to count an activated foil on a germanium
detector to hit a target statistical precision, and how long to count
background afterwards.

Given the irradiation history, foil geometry, and detector geometry it
computes the activation yield, places the detector far enough back to keep
dead-time losses under 1%, and iterates Knoll's optimal-duration formula
against the decaying count rate.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		settings = config.Load()
		if verbose {
			settings.LogLevel = slog.LevelDebug
		}
		logger, logCleanup = settings.NewLogger()

		// Site decay-data file wins over the built-in wallet-card table.
		if settings.DecayDataPath != "" {
			var err error
			decayDB, err = nucdata.OpenDB(settings.DecayDataPath)
			if err != nil {
				return fmt.Errorf("open decay data: %w", err)
			}
			decayData = decayDB
		} else {
			decayData = nucdata.Table{}
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if decayDB != nil {
			if err := decayDB.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close decay data: %v\n", err)
			}
		}
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(yieldCmd)
	rootCmd.AddCommand(efficiencyCmd)
	rootCmd.AddCommand(deadtimeCmd)
	rootCmd.AddCommand(nuclideCmd)
}
