package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/pkg/field"
	"github.com/aretw0/spinweighted/pkg/spin"
)

var (
	makeSpin int
	makeSize int
	makeRe   float64
	makeIm   float64
)

var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Create a field with every element set to one value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !spin.InRange(makeSpin) {
			return fmt.Errorf("spin %d outside [-%d, %d]", makeSpin, spin.MaxWeight, spin.MaxWeight)
		}
		if makeSize < 0 {
			return fmt.Errorf("size must not be negative, got %d", makeSize)
		}

		f := field.Filled(makeSpin, makeSize, complex(makeRe, makeIm))
		return workspace().Emit(cmd.OutOrStdout(), output, f)
	},
}

func init() {
	rootCmd.AddCommand(makeCmd)
	makeCmd.Flags().IntVar(&makeSpin, "spin", 0, "Spin weight")
	makeCmd.Flags().IntVar(&makeSize, "size", 1, "Number of elements")
	makeCmd.Flags().Float64Var(&makeRe, "re", 0, "Real part of every element")
	makeCmd.Flags().Float64Var(&makeIm, "im", 0, "Imaginary part of every element")
}
