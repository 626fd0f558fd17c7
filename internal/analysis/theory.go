package analysis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// theoryNameRe matches capitalized multi-word noun phrases ending in
// Theory, Model, or Framework, e.g. "Social Cognitive Theory".
var theoryNameRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z'-]+[ -]){1,4}(?:Theory|Model|Framework))\b`)

// constructListRe captures the enumeration after phrases like
// "constructs include" or "components include".
var constructListRe = regexp.MustCompile(`(?i)(?:key\s+)?(?:constructs?|components?|dimensions?|factors?)\s+(?:include|are|comprise)[:\s]+([^.]+)`)

// definitionRe captures "X refers to Y" and "X is defined as Y".
var definitionRe = regexp.MustCompile(`\b([A-Z][A-Za-z -]{2,40}?)\s+(?:refers to|is defined as|defined as)\s+([^.]+)`)

var theoryTypeKeywords = []struct {
	ttype    model.TheoryType
	keywords []string
}{
	{model.TheoryPsychological, []string{"cognitive", "behavior", "behaviour", "psycholog", "motivation", "emotion", "self-efficacy"}},
	{model.TheorySociological, []string{"social", "cultural", "societal", "network", "capital"}},
	{model.TheoryEconomic, []string{"econom", "utility", "market", "game", "rational choice"}},
	{model.TheoryEducational, []string{"learning", "education", "pedagog", "instruction"}},
	{model.TheoryOrganizational, []string{"organization", "organisation", "institution", "management", "leadership"}},
}

// ExtractTheories detects theoretical frameworks named in the text,
// in order of first mention, with constructs and definitions pulled
// from a window of the sentence mentioning the theory plus the next
// two. Noisy input yields an empty slice, never an error.
func ExtractTheories(content, title string) []model.TheoryInfo {
	sentences := SplitSentences(title + ". " + content)

	var theories []model.TheoryInfo
	seen := make(map[string]bool)

	for i, sentence := range sentences {
		for _, match := range theoryNameRe.FindAllString(sentence, -1) {
			name := strings.TrimSpace(match)
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true

			window := strings.Join(sentences[i:min(i+3, len(sentences))], " ")
			info := model.TheoryInfo{
				TheoryName:    name,
				TheoryType:    classifyTheory(name, window),
				KeyConstructs: extractConstructs(window),
				Definitions:   extractDefinitions(window),
			}
			info.Confidence = theoryConfidence(info)
			theories = append(theories, info)
		}
	}

	zap.L().Debug("analysis: theories extracted", zap.Int("count", len(theories)))
	return theories
}

// classifyTheory assigns a discipline from name and context keywords.
func classifyTheory(name, window string) model.TheoryType {
	text := strings.ToLower(name + " " + window)
	for _, tt := range theoryTypeKeywords {
		if containsAny(text, tt.keywords) {
			return tt.ttype
		}
	}
	return model.TheoryGeneral
}

// extractConstructs parses comma-separated capitalized terms from
// enumeration phrases, preserving order of first mention.
func extractConstructs(window string) []string {
	m := constructListRe.FindStringSubmatch(window)
	if m == nil {
		return nil
	}

	list := strings.ReplaceAll(m[1], " and ", ", ")
	var constructs []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" || !startsUpper(part) {
			continue
		}
		key := strings.ToLower(part)
		if !seen[key] {
			seen[key] = true
			constructs = append(constructs, part)
		}
	}
	return constructs
}

// extractDefinitions collects "X refers to / is defined as Y" pairs.
func extractDefinitions(window string) map[string]string {
	matches := definitionRe.FindAllStringSubmatch(window, -1)
	if len(matches) == 0 {
		return nil
	}
	defs := make(map[string]string, len(matches))
	for _, m := range matches {
		term := strings.TrimSpace(m[1])
		def := strings.TrimSpace(m[2])
		if _, ok := defs[term]; !ok {
			defs[term] = def
		}
	}
	return defs
}

// theoryConfidence starts from the bare name detection and grows with
// supporting constructs and definitions.
func theoryConfidence(info model.TheoryInfo) float64 {
	conf := 0.5
	if len(info.KeyConstructs) > 0 {
		conf += 0.2
	}
	if len(info.Definitions) > 0 {
		conf += 0.2
	}
	if conf > 0.9 {
		conf = 0.9
	}
	return conf
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
