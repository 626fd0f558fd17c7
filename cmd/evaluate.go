package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/scholar-cli/internal/citation"
	"github.com/sells-group/scholar-cli/internal/model"
)

var evaluateThreshold float64

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>...",
	Short: "Score source credibility for the citations in documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		evaluator, err := initEvaluator()
		if err != nil {
			return err
		}

		var citations []model.Citation
		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			var c = citation.ExtractFromText(doc.Text, doc.Source)
			if doc.HTML != "" {
				c = citation.ExtractFromWebpage(doc.HTML, doc.Source)
			}
			if c != nil {
				citations = append(citations, *c)
			}
		}

		if len(citations) == 0 {
			fmt.Fprintln(os.Stderr, "No citations found.")
			return nil
		}

		threshold := cfg.Credibility.QualityThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = evaluateThreshold
		}

		annotated, err := evaluator.FilterLowQuality(citations, threshold)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(annotated)
	},
}

func init() {
	evaluateCmd.Flags().Float64Var(&evaluateThreshold, "threshold", 4.0, "quality threshold in [0,10]; lower-scoring sources are flagged")
	rootCmd.AddCommand(evaluateCmd)
}
