package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/stats"
)

var statsAlpha float64

// statsOutput is the JSON shape of the stats command: raw measures plus
// the interpretations derived from them.
type statsOutput struct {
	Measures    []model.StatisticalMeasure `json:"measures,omitempty"`
	Tests       []model.StatisticalTest    `json:"tests,omitempty"`
	PValues     []model.StatisticalResult  `json:"p_values,omitempty"`
	EffectSizes []model.EffectSize         `json:"effect_sizes,omitempty"`
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Extract and interpret statistics from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		text := doc.Text
		if text == "" {
			text = doc.HTML
		}

		alpha := cfg.Pipeline.AlphaLevel
		if cmd.Flags().Changed("alpha") {
			alpha = statsAlpha
		}

		out := statsOutput{
			Measures: stats.ExtractMeasures(text),
			Tests:    stats.IdentifyTests(text),
		}
		for _, m := range out.Measures {
			switch m.Type {
			case model.MeasurePValue:
				out.PValues = append(out.PValues, stats.InterpretPValueAt(m.Value, alpha))
			case model.MeasureCohensD:
				out.EffectSizes = append(out.EffectSizes, stats.InterpretEffectSize(model.EffectCohensD, m.Value))
			case model.MeasureCorrelation:
				out.EffectSizes = append(out.EffectSizes, stats.InterpretEffectSize(model.EffectCorrelation, m.Value))
			case model.MeasureEtaSquared:
				out.EffectSizes = append(out.EffectSizes, stats.InterpretEffectSize(model.EffectEtaSquared, m.Value))
			case model.MeasureOddsRatio:
				out.EffectSizes = append(out.EffectSizes, stats.InterpretEffectSize(model.EffectOddsRatio, m.Value))
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	statsCmd.Flags().Float64Var(&statsAlpha, "alpha", 0.05, "significance level for p-value interpretation")
	rootCmd.AddCommand(statsCmd)
}
