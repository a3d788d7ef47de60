package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/pkg/field"
)

var applyCmd = &cobra.Command{
	Use:   "apply <neg|exp|sqrt> <file>",
	Short: "Apply a unary operation to a field file",
	Long:  `Apply neg, exp or sqrt elementwise. exp and sqrt need a spin 0 field.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		f, err := ws.Load(args[1])
		if err != nil {
			return err
		}

		result, err := field.Unary(args[0], f)
		if err != nil {
			return err
		}
		return ws.Emit(cmd.OutOrStdout(), output, result)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
