package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resizeSize int
)

var resizeCmd = &cobra.Command{
	Use:   "resize <file>",
	Short: "Set the number of elements of a field",
	Long: `Set the number of elements of a field. A field already at that size is
left untouched; otherwise the contents are reset to zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resizeSize < 0 {
			return fmt.Errorf("size must not be negative, got %d", resizeSize)
		}

		ws := workspace()
		f, err := ws.Load(args[0])
		if err != nil {
			return err
		}

		f.Resize(resizeSize)
		return ws.Emit(cmd.OutOrStdout(), output, f)
	},
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	resizeCmd.Flags().IntVar(&resizeSize, "size", 0, "Number of elements")
}
