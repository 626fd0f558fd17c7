package analysis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

var ethicalCategoryKeywords = []struct {
	category model.EthicalCategory
	keywords []string
}{
	{model.EthicsInformedConsent, []string{"informed consent", "consent form", "consented to participate"}},
	{model.EthicsPrivacy, []string{"privacy", "personally identifiable", "personal data"}},
	{model.EthicsVulnerablePopulation, []string{"vulnerable", "minors", "children participants", "prisoners", "elderly participants"}},
	{model.EthicsHarm, []string{"risk of harm", "potential harm", "adverse effect", "distress"}},
	{model.EthicsDataSecurity, []string{"data security", "encrypted", "secure server", "password-protected"}},
	{model.EthicsAnimalWelfare, []string{"animal welfare", "animal care", "iacuc", "animal subjects"}},
	{model.EthicsConfidentiality, []string{"confidential", "anonymity", "anonymized", "anonymised", "de-identified", "pseudonym"}},
	{model.EthicsConflictOfInterest, []string{"conflict of interest", "competing interests", "financial disclosure"}},
	{model.EthicsDeception, []string{"deception", "deceived", "debriefing", "debriefed"}},
	{model.EthicsCulturalSensitivity, []string{"cultural sensitivity", "culturally appropriate", "indigenous community"}},
}

var irbRe = regexp.MustCompile(`(?i)\b(?:approved by|approval (?:was )?(?:granted|obtained) (?:by|from))\s+(?:the\s+)?([A-Z][A-Za-z .'-]{3,80}?)(?:\s*\(|[.,;]|$)`)

var irbSignals = []string{
	"institutional review board", "irb", "ethics committee",
	"ethics board", "ethical approval", "review board",
}

var safeguardKeywords = []struct {
	category model.EthicalCategory
	keywords []string
}{
	{model.EthicsConfidentiality, []string{"anonymized", "anonymised", "de-identified", "pseudonym"}},
	{model.EthicsDataSecurity, []string{"encrypted", "secure server", "password-protected", "access-controlled"}},
	{model.EthicsInformedConsent, []string{"could withdraw", "right to withdraw", "voluntary participation"}},
}

// EthicsInfo bundles the parallel outputs of the ethics scan.
type EthicsInfo struct {
	Considerations []model.EthicalConsideration `json:"considerations,omitempty"`
	IRBApprovals   []model.IRBApproval          `json:"irb_approvals,omitempty"`
	Safeguards     []model.EthicalSafeguard     `json:"safeguards,omitempty"`
}

// ExtractEthics scans the text for ethical considerations, review board
// approvals, and protective safeguards. Each category reports at most
// one consideration per sentence; noisy input yields an empty result,
// never an error.
func ExtractEthics(content string) EthicsInfo {
	sentences := SplitSentences(content)

	var info EthicsInfo
	for _, sentence := range sentences {
		low := strings.ToLower(sentence)

		for _, ck := range ethicalCategoryKeywords {
			hits := matchedKeywords(low, ck.keywords)
			if len(hits) == 0 {
				continue
			}
			info.Considerations = append(info.Considerations, model.EthicalConsideration{
				Category:   ck.category,
				Statement:  sentence,
				Confidence: keywordConfidence(len(hits)),
			})
		}

		if containsAny(low, irbSignals) {
			approval := model.IRBApproval{Statement: sentence, Confidence: 0.7}
			if m := irbRe.FindStringSubmatch(sentence); m != nil {
				approval.Board = strings.TrimSpace(m[1])
				approval.Confidence = 0.9
			}
			info.IRBApprovals = append(info.IRBApprovals, approval)
		}

		for _, sk := range safeguardKeywords {
			for _, kw := range sk.keywords {
				if strings.Contains(low, kw) {
					info.Safeguards = append(info.Safeguards, model.EthicalSafeguard{
						Category:   sk.category,
						Measure:    kw,
						Confidence: 0.7,
					})
				}
			}
		}
	}

	zap.L().Debug("analysis: ethics extracted",
		zap.Int("considerations", len(info.Considerations)),
		zap.Int("irb_approvals", len(info.IRBApprovals)),
		zap.Int("safeguards", len(info.Safeguards)),
	)
	return info
}

// keywordConfidence maps a per-sentence keyword hit count to [0.5,0.9].
func keywordConfidence(hits int) float64 {
	conf := 0.4 + 0.2*float64(hits)
	if conf > 0.9 {
		conf = 0.9
	}
	return conf
}
