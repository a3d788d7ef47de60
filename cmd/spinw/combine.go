package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/pkg/field"
)

var combineCmd = &cobra.Command{
	Use:   "combine <add|sub|mul|div> <a> <b>",
	Short: "Combine two field files",
	Long: `Combine two field files elementwise. add and sub need equal spins;
mul adds the spins and div subtracts them.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		a, err := ws.Load(args[1])
		if err != nil {
			return err
		}
		b, err := ws.Load(args[2])
		if err != nil {
			return err
		}

		result, err := field.Binary(args[0], a, b)
		if err != nil {
			return err
		}
		return ws.Emit(cmd.OutOrStdout(), output, result)
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
}
