package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/model"
)

func TestExtractMeasures(t *testing.T) {
	text := "The treatment group (M = 4.21, SD = 0.87, n = 52) outperformed controls " +
		"(M = 3.10, SD = 1.02, n = 49), t(99) = 5.43, p < .001, d = 0.82, 95% CI."

	measures := ExtractMeasures(text)

	types := make([]model.MeasureType, len(measures))
	for i, m := range measures {
		types[i] = m.Type
	}
	assert.Equal(t, []model.MeasureType{
		model.MeasureMean, model.MeasureSD, model.MeasureSampleSize,
		model.MeasureMean, model.MeasureSD, model.MeasureSampleSize,
		model.MeasurePValue, model.MeasureCohensD, model.MeasureCI,
	}, types, "order of appearance, duplicates kept")

	assert.InDelta(t, 4.21, measures[0].Value, 1e-9)
	assert.Equal(t, "M = 4.21", measures[0].Raw)
	assert.InDelta(t, 0.001, measures[6].Value, 1e-9)
	assert.InDelta(t, 0.82, measures[7].Value, 1e-9)
	assert.InDelta(t, 95, measures[8].Value, 1e-9)
}

func TestExtractMeasuresCorrelationAndOddsRatio(t *testing.T) {
	measures := ExtractMeasures("We observed r = -.34, η² = .06, and OR = 2.10 across models.")
	require.Len(t, measures, 3)

	assert.Equal(t, model.MeasureCorrelation, measures[0].Type)
	assert.InDelta(t, -0.34, measures[0].Value, 1e-9)
	assert.Equal(t, model.MeasureEtaSquared, measures[1].Type)
	assert.InDelta(t, 0.06, measures[1].Value, 1e-9)
	assert.Equal(t, model.MeasureOddsRatio, measures[2].Type)
	assert.InDelta(t, 2.10, measures[2].Value, 1e-9)
}

func TestExtractMeasuresNoisyInput(t *testing.T) {
	assert.Empty(t, ExtractMeasures("no statistics in this sentence at all"))
	assert.Empty(t, ExtractMeasures(""))
}

func TestIdentifyTests(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.StatisticalTest
	}{
		{
			name: "multiple tests",
			text: "We ran an independent samples t-test, a one-way ANOVA, and chi-square tests.",
			want: []model.StatisticalTest{model.TestTTest, model.TestANOVA, model.TestChiSquare},
		},
		{
			name: "manova does not imply anova",
			text: "A MANOVA examined the outcome vectors.",
			want: []model.StatisticalTest{model.TestMANOVA},
		},
		{
			name: "nonparametric family",
			text: "Mann-Whitney U and Kruskal-Wallis tests were used.",
			want: []model.StatisticalTest{model.TestMannWhitney, model.TestKruskalWallis},
		},
		{
			name: "long forms",
			text: "Structural equation modeling and factor analysis supported the scale.",
			want: []model.StatisticalTest{model.TestFactorAnalysis, model.TestSEM},
		},
		{
			name: "none found",
			text: "No inferential statistics were reported.",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyTests(tt.text))
		})
	}
}
