package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/pipeline"
)

var analyzeNoStore bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run the full extraction pipeline on a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		evaluator, err := initEvaluator()
		if err != nil {
			return err
		}

		p := pipeline.New(cfg, nil, evaluator)
		if !analyzeNoStore {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			p = pipeline.New(cfg, st, evaluator)
		}

		a, err := p.Run(ctx, doc)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("analysis complete",
			zap.String("source", doc.Source),
			zap.String("run", a.RunID),
			zap.Int("citations", len(a.Citations)),
			zap.Int("measures", len(a.Measures)),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeNoStore, "no-store", false, "skip run persistence")
	rootCmd.AddCommand(analyzeCmd)
}
