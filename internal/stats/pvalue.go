package stats

import (
	"fmt"

	"github.com/sells-group/scholar-cli/internal/model"
)

// DefaultAlpha is the significance level used when none is given.
const DefaultAlpha = 0.05

// InterpretPValue judges a p-value against the default alpha level.
func InterpretPValue(p float64) model.StatisticalResult {
	return InterpretPValueAt(p, DefaultAlpha)
}

// InterpretPValueAt judges a p-value against an explicit alpha level.
// Significance is derived strictly as p < alpha; the strength bands are
// fixed and deterministic.
func InterpretPValueAt(p, alpha float64) model.StatisticalResult {
	res := model.StatisticalResult{
		PValue:        p,
		AlphaLevel:    alpha,
		IsSignificant: p < alpha,
		Strength:      strengthOfEvidence(p),
	}
	if res.IsSignificant {
		res.Interpretation = fmt.Sprintf("statistically significant at α = %g (%s evidence against the null hypothesis)", alpha, res.Strength)
	} else {
		res.Interpretation = fmt.Sprintf("not statistically significant at α = %g", alpha)
	}
	return res
}

// strengthOfEvidence maps a p-value to its fixed evidence band.
func strengthOfEvidence(p float64) string {
	switch {
	case p < 0.001:
		return "very strong"
	case p < 0.01:
		return "strong"
	case p < 0.05:
		return "moderate"
	case p < 0.10:
		return "weak/marginal"
	default:
		return "not significant"
	}
}
