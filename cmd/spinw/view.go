package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/pkg/field"
)

var (
	viewOffset int
	viewLength int
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Print a contiguous range of a field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		f, err := ws.Load(args[0])
		if err != nil {
			return err
		}

		length := viewLength
		if length < 0 {
			length = f.Size() - viewOffset
		}
		v, err := field.View(f, viewOffset, length)
		if err != nil {
			return err
		}
		return ws.Emit(cmd.OutOrStdout(), output, v)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVar(&viewOffset, "offset", 0, "First element of the range")
	viewCmd.Flags().IntVar(&viewLength, "length", -1, "Number of elements; negative means up to the end")
}
