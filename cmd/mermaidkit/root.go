package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/mermaidkit/internal/logging"
	"github.com/spf13/cobra"
)

// logger is configured from --level before any command runs.
var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "mermaidkit",
	Short: "mermaidkit renders diagram documents to Mermaid",
	Long: `mermaidkit turns declarative diagram documents (YAML, TOML or JSON)
into Mermaid text, and serves the same renderer over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("level")
		level, err := logging.ParseLevel(name)
		if err != nil {
			return err
		}
		logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("level", "warn", "Log level: debug, info, warn or error")
}
