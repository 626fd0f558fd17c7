package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/citation"
)

var (
	bibStyle      string
	bibSortAuthor bool
	bibBibTeX     string
	bibRIS        string
)

var bibliographyCmd = &cobra.Command{
	Use:   "bibliography <file>...",
	Short: "Generate a bibliography from one or more documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := resolveStyle(bibStyle)
		if err != nil {
			return err
		}

		mgr := citation.NewManager()
		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			var c = citation.ExtractFromText(doc.Text, doc.Source)
			if doc.HTML != "" {
				c = citation.ExtractFromWebpage(doc.HTML, doc.Source)
			}
			if c == nil {
				zap.L().Warn("no citation found", zap.String("source", path))
				continue
			}
			mgr.Add(c)
		}

		if mgr.Size() == 0 {
			fmt.Fprintln(os.Stderr, "No citations found.")
			return nil
		}

		sortByAuthor := cfg.Citation.SortByAuthor
		if cmd.Flags().Changed("sort-by-author") {
			sortByAuthor = bibSortAuthor
		}
		fmt.Print(mgr.GenerateBibliography(style, sortByAuthor))

		if bibBibTeX != "" {
			if err := mgr.ExportBibTeX(bibBibTeX); err != nil {
				return err
			}
			zap.L().Info("bibtex written", zap.String("path", bibBibTeX))
		}
		if bibRIS != "" {
			if err := mgr.ExportRIS(bibRIS); err != nil {
				return err
			}
			zap.L().Info("ris written", zap.String("path", bibRIS))
		}
		return nil
	},
}

func init() {
	bibliographyCmd.Flags().StringVar(&bibStyle, "style", "", "citation style (apa, mla, chicago, ieee)")
	bibliographyCmd.Flags().BoolVar(&bibSortAuthor, "sort-by-author", true, "sort entries by first author surname")
	bibliographyCmd.Flags().StringVar(&bibBibTeX, "export-bibtex", "", "also write a BibTeX file to this path")
	bibliographyCmd.Flags().StringVar(&bibRIS, "export-ris", "", "also write an RIS file to this path")
	rootCmd.AddCommand(bibliographyCmd)
}
