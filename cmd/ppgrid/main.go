// Command ppgrid fits a projection pursuit dimension reduction model to
// a CSV dataset from the command line.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// rootCmd is the base command for the ppgrid CLI.
var rootCmd = &cobra.Command{
	Use:   "ppgrid",
	Short: "Projection pursuit dimension reduction via the grid algorithm",
	Long: `ppgrid extracts latent components from a numeric dataset by maximizing
a projection index (variance, kurtosis, covariance with a response, ...)
over linear combinations of the variables, and optionally builds a
linear predictive model by regressing the response on the scores.`,
}

func main() {
	rootCmd.AddCommand(fitCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
