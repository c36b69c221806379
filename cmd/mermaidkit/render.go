package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/mermaidkit/internal/document"
	"github.com/aretw0/mermaidkit/internal/presentation/tui"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a diagram document to Mermaid text",
	Long: `Reads a diagram document from file, or from stdin when no file is given,
and prints the Mermaid text. Rejected statements are reported on stderr and
the rest of the diagram is still printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		pretty, _ := cmd.Flags().GetBool("pretty")
		permissive, _ := cmd.Flags().GetBool("unsafe")

		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if formatName == "" {
				formatName = filepath.Ext(args[0])
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		format, err := document.ParseFormat(formatName)
		if err != nil {
			return err
		}
		doc, err := document.Load(data, format)
		if err != nil {
			return err
		}

		opts := []diagram.Option{diagram.WithLogger(logger)}
		if permissive {
			opts = append(opts, diagram.Permissive())
		}
		out, buildErr := document.Build(doc, opts...)
		if errors.Is(buildErr, document.ErrDecode) || errors.Is(buildErr, document.ErrUnsupportedKind) {
			return buildErr
		}

		if pretty {
			if err := preview(cmd, doc.Title, out); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}

		rejected := document.Errors(buildErr)
		for _, e := range rejected {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		if len(rejected) > 0 {
			return fmt.Errorf("%d statement(s) rejected", len(rejected))
		}
		return nil
	},
}

func preview(cmd *cobra.Command, title, diagram string) error {
	r, err := tui.NewRenderer(tui.Width(os.Stdout))
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	out, err := r.Preview(title, diagram)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "", "Document format: yaml, toml or json (default: from the file extension, else yaml)")
	renderCmd.Flags().Bool("pretty", false, "Preview the diagram as highlighted markdown")
	renderCmd.Flags().Bool("unsafe", false, "Skip argument validation in the builders")
}
