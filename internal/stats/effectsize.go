package stats

import (
	"math"

	"github.com/sells-group/scholar-cli/internal/model"
)

// InterpretEffectSize classifies an effect size value into its
// magnitude band. Thresholds are per effect-size family; odds ratios
// are judged by distance from 1 in either direction.
func InterpretEffectSize(t model.EffectSizeType, value float64) model.EffectSize {
	return model.EffectSize{
		Type:           t,
		Value:          value,
		Interpretation: interpretMagnitude(t, value),
	}
}

func interpretMagnitude(t model.EffectSizeType, value float64) model.EffectInterpretation {
	switch t {
	case model.EffectCohensD:
		return bandedMagnitude(math.Abs(value), 0.20, 0.50, 0.80)
	case model.EffectCorrelation:
		return bandedMagnitude(math.Abs(value), 0.10, 0.30, 0.50)
	case model.EffectEtaSquared:
		return bandedMagnitude(value, 0.01, 0.06, 0.14)
	case model.EffectOddsRatio:
		return oddsRatioMagnitude(value)
	default:
		return model.EffectNegligible
	}
}

// bandedMagnitude applies ascending thresholds: below small is
// negligible, at or above large is large.
func bandedMagnitude(v, small, medium, large float64) model.EffectInterpretation {
	switch {
	case v >= large:
		return model.EffectLarge
	case v >= medium:
		return model.EffectMedium
	case v >= small:
		return model.EffectSmall
	default:
		return model.EffectNegligible
	}
}

// oddsRatioMagnitude judges an odds ratio by its deviation from 1.
// Ratios below 1 mirror the bands above 1.
func oddsRatioMagnitude(or float64) model.EffectInterpretation {
	switch {
	case or >= 0.90 && or <= 1.10:
		return model.EffectNegligible
	case or > 0.70 && or <= 1.50:
		return model.EffectSmall
	case or > 0.50 && or <= 2.50:
		return model.EffectMedium
	default:
		return model.EffectLarge
	}
}

// ConvertRToD converts a correlation coefficient to Cohen's d using
// d = 2r / sqrt(1 - r²). Defined for r in (-1, 1).
func ConvertRToD(r float64) float64 {
	return 2 * r / math.Sqrt(1-r*r)
}

// ConvertDToR converts Cohen's d to a correlation coefficient using
// r = d / sqrt(d² + 4). Exact inverse of ConvertRToD within
// floating-point tolerance.
func ConvertDToR(d float64) float64 {
	return d / math.Sqrt(d*d+4)
}

// AssessTest judges whether a statistical test fits the data it was
// applied to. Mismatches that merely waste power produce warnings;
// mismatches that invalidate assumptions mark the test inappropriate.
func AssessTest(test model.StatisticalTest, ctx model.TestContext) model.TestAssessment {
	a := model.TestAssessment{Test: test, Appropriate: true}

	switch test {
	case model.TestTTest:
		if ctx.DataType == "categorical" {
			a.Appropriate = false
			a.Warnings = append(a.Warnings, "t-test assumes a continuous outcome")
		}
		if ctx.Groups > 2 {
			a.Appropriate = false
			a.Warnings = append(a.Warnings, "more than two groups; use ANOVA")
		}
	case model.TestANOVA, model.TestANCOVA, model.TestMANOVA:
		if ctx.DataType == "categorical" {
			a.Appropriate = false
			a.Warnings = append(a.Warnings, "analysis of variance assumes a continuous outcome")
		}
		if ctx.Groups == 2 {
			a.Warnings = append(a.Warnings, "only two groups; a t-test is simpler")
		}
	case model.TestChiSquare, model.TestFishersExact:
		if ctx.DataType != "categorical" {
			a.Appropriate = false
			a.Warnings = append(a.Warnings, "contingency tests require categorical data")
		}
	case model.TestMannWhitney, model.TestWilcoxon, model.TestKruskalWallis:
		if ctx.DataType == "categorical" {
			a.Appropriate = false
			a.Warnings = append(a.Warnings, "rank tests require ordinal or continuous data")
		}
		if test == model.TestKruskalWallis && ctx.Groups == 2 {
			a.Warnings = append(a.Warnings, "only two groups; Mann-Whitney is simpler")
		}
	case model.TestRegression, model.TestFactorAnalysis, model.TestSEM, model.TestMetaAnalysis:
		// No group-count constraint applies.
	}
	return a
}
