package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"LassoCoreCircuit/modules/trace"
)

var traceChallenges uint

func init() {
	lassoCmd.AddCommand(traceCmd)

	traceCmd.PersistentFlags().UintVar(&traceChallenges, "challenges", 3, "How many scalar challenges the scripted run derives.")
}

// traceCmd drives a small scripted protocol interaction against a recording
// transcript and prints the captured golden trace with the derived
// challenges, so transcript regressions can be eyeballed without a full
// proof run.
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print a golden transcript trace for a scripted protocol run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := trace.NewRecordingTranscript("lasso-trace")
		t.AppendProtocolName([]byte("lasso core trace"))

		challenges := make([]string, traceChallenges)
		for i := range challenges {
			label := []byte(fmt.Sprintf("challenge_%d", i))
			c := t.ChallengeScalar(label)
			challenges[i] = c.String()
		}

		logger.Info().
			Uint("challenges", traceChallenges).
			Int("rows", len(t.Rows())).
			Msg("captured golden trace")

		for i, row := range t.Rows() {
			fmt.Printf("%4d  %s\n", i, row.String())
		}
		for i, c := range challenges {
			fmt.Printf("challenge_%d = %s\n", i, c)
		}
		return nil
	},
}
