package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var lassoCmd = &cobra.Command{
	Use:   "lassocore",
	Short: "Inspect Lasso subtables and Fiat-Shamir transcript traces",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	if err := lassoCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
