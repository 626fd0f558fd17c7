package stats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// measurePattern pairs a measure type with its regex family. The first
// capture group is the numeric value.
type measurePattern struct {
	mtype model.MeasureType
	re    *regexp.Regexp
}

var measurePatterns = []measurePattern{
	{model.MeasureMean, regexp.MustCompile(`(?:\bM|μ)\s*=\s*(-?\d*\.?\d+)`)},
	{model.MeasureSD, regexp.MustCompile(`(?:\bSD|σ)\s*=\s*(\d*\.?\d+)`)},
	{model.MeasurePValue, regexp.MustCompile(`\bp\s*[<=>]\s*(\.?\d*\.?\d+)`)},
	{model.MeasureCI, regexp.MustCompile(`(\d+)%\s*CI`)},
	{model.MeasureSampleSize, regexp.MustCompile(`\b[Nn]\s*=\s*(\d+)`)},
	{model.MeasureCohensD, regexp.MustCompile(`\bd\s*=\s*(-?\d*\.?\d+)`)},
	{model.MeasureEtaSquared, regexp.MustCompile(`(?:η²|η2|eta²|eta squared)\s*=\s*(\.?\d*\.?\d+)`)},
	{model.MeasureCorrelation, regexp.MustCompile(`\br\s*=\s*(-?\.?\d*\.?\d+)`)},
	{model.MeasureOddsRatio, regexp.MustCompile(`\bOR\s*=\s*(\d*\.?\d+)`)},
}

// ExtractMeasures finds every statistical measure in the text, ordered
// by position of appearance. Repeated mentions stay distinct; unparsable
// matches are skipped. Never errors on noisy input.
func ExtractMeasures(text string) []model.StatisticalMeasure {
	var measures []model.StatisticalMeasure
	for _, mp := range measurePatterns {
		for _, loc := range mp.re.FindAllStringSubmatchIndex(text, -1) {
			raw := text[loc[0]:loc[1]]
			value, err := strconv.ParseFloat(strings.TrimSpace(text[loc[2]:loc[3]]), 64)
			if err != nil {
				zap.L().Debug("stats: unparsable measure skipped", zap.String("raw", raw))
				continue
			}
			measures = append(measures, model.StatisticalMeasure{
				Type:     mp.mtype,
				Value:    value,
				Raw:      raw,
				Position: loc[0],
			})
		}
	}
	sort.SliceStable(measures, func(i, j int) bool {
		return measures[i].Position < measures[j].Position
	})
	return measures
}

var testKeywords = []struct {
	test     model.StatisticalTest
	keywords []string
}{
	{model.TestTTest, []string{"t-test", "t test", "paired t", "independent samples t"}},
	{model.TestANCOVA, []string{"ancova", "analysis of covariance"}},
	{model.TestMANOVA, []string{"manova", "multivariate analysis of variance"}},
	{model.TestANOVA, []string{"anova", "analysis of variance"}},
	{model.TestRegression, []string{"regression"}},
	{model.TestMannWhitney, []string{"mann-whitney", "mann whitney"}},
	{model.TestWilcoxon, []string{"wilcoxon"}},
	{model.TestKruskalWallis, []string{"kruskal-wallis", "kruskal wallis"}},
	{model.TestChiSquare, []string{"chi-square", "chi square", "χ²"}},
	{model.TestFishersExact, []string{"fisher's exact", "fishers exact"}},
	{model.TestFactorAnalysis, []string{"factor analysis"}},
	{model.TestSEM, []string{"structural equation model", "structural equation modeling", "structural equation modelling"}},
	{model.TestMetaAnalysis, []string{"meta-analysis", "meta analysis"}},
}

// IdentifyTests returns every named statistical test mentioned in the
// text, in vocabulary order, without duplicates.
func IdentifyTests(text string) []model.StatisticalTest {
	low := strings.ToLower(text)
	// The MANOVA spellings contain the ANOVA ones; mask them so MANOVA
	// alone does not also report ANOVA.
	masked := strings.ReplaceAll(low, "manova", "")
	masked = strings.ReplaceAll(masked, "multivariate analysis of variance", "")

	var tests []model.StatisticalTest
	for _, tk := range testKeywords {
		haystack := low
		if tk.test == model.TestANOVA {
			haystack = masked
		}
		for _, kw := range tk.keywords {
			if strings.Contains(haystack, kw) {
				tests = append(tests, tk.test)
				break
			}
		}
	}
	return tests
}
