package analysis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// Strong indicators settle classification on their own, checked in
// order. Qualitative and quantitative compete by family match count and
// tie into mixed methods.
var strongIndicators = []struct {
	mtype    model.MethodologyType
	keywords []string
}{
	{model.MethodMetaAnalysis, []string{"meta-analysis", "meta analysis", "pooled effect"}},
	{model.MethodSystematicReview, []string{"systematic review", "prisma"}},
	{model.MethodExperimental, []string{"randomized controlled trial", "randomised controlled trial", "rct", "random assignment", "control group"}},
	{model.MethodComputational, []string{"simulation", "computational model", "agent-based model", "machine learning model", "neural network"}},
	{model.MethodCaseStudy, []string{"case study", "single-case design"}},
}

var qualitativeKeywords = []string{
	"semi-structured interview", "ethnograph", "grounded theory",
	"focus group", "thematic analysis", "phenomenolog",
	"participant observation", "narrative inquiry", "qualitative",
}

var quantitativeKeywords = []string{
	"survey", "regression", "statistical significance", "anova",
	"questionnaire", "correlation", "structural equation",
	"quantitative", "t-test", "chi-square",
}

var analysisTechniqueKeywords = []string{
	"thematic analysis", "regression", "anova", "ancova", "manova",
	"structural equation", "factor analysis", "content analysis",
	"chi-square", "t-test", "correlation analysis",
}

var sampleInfoRe = regexp.MustCompile(`(?i)\b(?:n\s*=\s*\d+|\d+\s+(?:participants|subjects|respondents|patients|students|interviewees))\b`)

var dataCollectionKeywords = []string{
	"data were collected", "data was collected", "data collection",
	"participants completed", "recruited", "administered",
}

// ExtractMethodology classifies the research design of the given text
// and pulls out supporting detail. Noisy or empty input yields an
// unknown classification with zero confidence, never an error.
func ExtractMethodology(content, title string) model.MethodologyInfo {
	text := strings.ToLower(title + " " + content)
	sentences := SplitSentences(content)

	info := model.MethodologyInfo{MethodologyType: model.MethodUnknown}

	matchedFamilies := 0
	for _, si := range strongIndicators {
		hits := matchedKeywords(text, si.keywords)
		if len(hits) == 0 {
			continue
		}
		matchedFamilies++
		info.SpecificMethods = append(info.SpecificMethods, hits...)
		if info.MethodologyType == model.MethodUnknown {
			info.MethodologyType = si.mtype
		}
	}

	qualHits := matchedKeywords(text, qualitativeKeywords)
	quantHits := matchedKeywords(text, quantitativeKeywords)
	if len(qualHits) > 0 {
		matchedFamilies++
		info.SpecificMethods = append(info.SpecificMethods, qualHits...)
	}
	if len(quantHits) > 0 {
		matchedFamilies++
		info.SpecificMethods = append(info.SpecificMethods, quantHits...)
	}

	if info.MethodologyType == model.MethodUnknown {
		switch {
		case len(qualHits) > 0 && len(quantHits) > 0 && comparableStrength(len(qualHits), len(quantHits)):
			info.MethodologyType = model.MethodMixed
		case len(qualHits) > len(quantHits):
			info.MethodologyType = model.MethodQualitative
		case len(quantHits) > 0:
			info.MethodologyType = model.MethodQuantitative
		}
	}

	info.AnalysisTechniques = matchedKeywords(text, analysisTechniqueKeywords)
	info.Limitations = sentencesContaining(sentences, "limitation", "constraint", "caveat", "weakness")

	if m := sampleInfoRe.FindString(content); m != "" {
		info.SampleInfo = m
	}
	if dc := sentencesContaining(sentences, dataCollectionKeywords...); len(dc) > 0 {
		info.DataCollection = dc[0]
	}

	info.Confidence = methodologyConfidence(matchedFamilies)

	zap.L().Debug("analysis: methodology extracted",
		zap.String("type", string(info.MethodologyType)),
		zap.Float64("confidence", info.Confidence),
	)
	return info
}

// comparableStrength reports whether two family match counts are close
// enough to call the design mixed rather than dominated by one side.
func comparableStrength(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return b <= 2*a
}

// methodologyConfidence grows with the number of independent keyword
// families matched: one family around 0.5, three or more around 0.9.
func methodologyConfidence(families int) float64 {
	if families == 0 {
		return 0
	}
	conf := 0.3 + 0.2*float64(families)
	if conf > 0.9 {
		conf = 0.9
	}
	return conf
}

// matchedKeywords returns the keywords present in the lower-cased text,
// deduplicated, in vocabulary order.
func matchedKeywords(text string, keywords []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		if !seen[kw] && strings.Contains(text, kw) {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
