package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/pipeline"
	"github.com/sells-group/scholar-cli/pkg/synthesis"
)

var (
	reportStyle      string
	reportOut        string
	reportSynthesize bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Produce an analysis report for a document",
	Long:  "Runs the full pipeline and formats the result as a readable report. With --synthesize, a prose summary is generated from the report via the Anthropic API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		style, err := resolveStyle(reportStyle)
		if err != nil {
			return err
		}

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		evaluator, err := initEvaluator()
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		p := pipeline.New(cfg, st, evaluator)
		a, err := p.Run(ctx, doc)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		report := pipeline.FormatReport(a, style)

		if reportSynthesize {
			if cfg.Anthropic.Key == "" {
				return eris.New("anthropic.key is required for --synthesize")
			}
			client := synthesis.NewClient(cfg.Anthropic.Key, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
			prose, err := client.Synthesize(ctx, report)
			if err != nil {
				return err
			}
			report += "## Synthesis\n" + prose + "\n"
		}

		if reportOut != "" {
			if err := os.WriteFile(reportOut, []byte(report), 0o644); err != nil {
				return eris.Wrapf(err, "write %s", reportOut)
			}
			zap.L().Info("report written", zap.String("path", reportOut), zap.String("run", a.RunID))
			return nil
		}

		fmt.Print(report)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportStyle, "style", "", "citation style for the sources section")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write the report to a file instead of stdout")
	reportCmd.Flags().BoolVar(&reportSynthesize, "synthesize", false, "append an LLM prose summary")
	rootCmd.AddCommand(reportCmd)
}
