package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/scholar-cli/internal/citation"
)

var extractStyle string

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract citation metadata from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		var c = citation.ExtractFromText(doc.Text, doc.Source)
		if doc.HTML != "" {
			c = citation.ExtractFromWebpage(doc.HTML, doc.Source)
		}
		if c == nil {
			fmt.Fprintln(os.Stderr, "No citation found.")
			return nil
		}

		if extractStyle != "" {
			style, err := resolveStyle(extractStyle)
			if err != nil {
				return err
			}
			fmt.Println(citation.Format(c, style, 1))
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractStyle, "style", "", "format as a reference instead of JSON (apa, mla, chicago, ieee)")
	rootCmd.AddCommand(extractCmd)
}
