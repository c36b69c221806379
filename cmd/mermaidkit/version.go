package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/mermaidkit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mermaidkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mermaidkit version %s\n", strings.TrimSpace(mermaidkit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
