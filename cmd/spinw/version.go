package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spinw",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spinw version %s\n", strings.TrimSpace(spinweighted.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
