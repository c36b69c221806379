package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/mermaidkit"
	"github.com/aretw0/mermaidkit/internal/document"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the diagram kinds",
	Long:  `Lists every diagram kind with its Mermaid keyword, marking the kinds that documents can describe.`,
	Run: func(cmd *cobra.Command, args []string) {
		documents := map[mermaidkit.Kind]bool{}
		for _, k := range document.Kinds() {
			documents[k] = true
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tKEYWORD\tDOCUMENT")
		for _, k := range mermaidkit.Kinds() {
			kw, _ := k.Keyword()
			doc := "-"
			if documents[k] {
				doc = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", k, kw, doc)
		}
		_ = w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
