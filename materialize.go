package main

import (
	"fmt"
	"math/bits"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"LassoCoreCircuit/modules/subtable"
)

var (
	subtableName string
	subtableSize uint
	outFile      string
)

func init() {
	lassoCmd.AddCommand(materializeCmd)

	materializeCmd.PersistentFlags().StringVar(&subtableName, "subtable", "identity", "The subtable variant to materialize.")
	materializeCmd.PersistentFlags().UintVar(&subtableSize, "size", 256, "The subtable size, must be a power of two.")
	materializeCmd.PersistentFlags().StringVar(&outFile, "out", "", "The output file, defaults to stdout.")
}

var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "Dump a materialized subtable, one field element per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if subtableSize == 0 || bits.OnesCount(subtableSize) != 1 {
			return fmt.Errorf("subtable size %d is not a power of two", subtableSize)
		}

		sub, err := subtableByName(subtableName)
		if err != nil {
			return err
		}

		out := os.Stdout
		if outFile != "" {
			out, err = os.Create(outFile)
			if err != nil {
				return err
			}
			defer out.Close()
		}

		logger.Info().
			Str("subtable", subtableName).
			Uint("size", subtableSize).
			Msg("materializing subtable")

		for _, e := range sub.Materialize(int(subtableSize)) {
			if _, err := fmt.Fprintln(out, e.String()); err != nil {
				return err
			}
		}
		return nil
	},
}

func subtableByName(name string) (subtable.LassoSubtable, error) {
	switch strings.ToLower(name) {
	case "identity":
		return subtable.New(subtable.IdentitySubtable), nil
	default:
		return nil, fmt.Errorf("unknown subtable variant %q", name)
	}
}
