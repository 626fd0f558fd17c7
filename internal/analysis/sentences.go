package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// Abbreviations protected from sentence splitting. Academic prose is
// dense with these.
var abbreviations = []string{
	"et al.", "i.e.", "e.g.", "cf.", "vs.", "etc.",
	"Dr.", "Prof.", "Fig.", "Tab.", "No.", "pp.", "Vol.",
}

var sentenceBoundaryRe = regexp.MustCompile(`([.!?])\s+`)

// SplitSentences breaks text into sentences at terminal punctuation,
// protecting common abbreviations and dropping fragments under ten
// characters.
func SplitSentences(text string) []string {
	protected := text
	for i, abbr := range abbreviations {
		placeholder := fmt.Sprintf("\x00%d\x00", i)
		protected = strings.ReplaceAll(protected, abbr, placeholder)
	}

	parts := sentenceBoundaryRe.Split(protected, -1)
	marks := sentenceBoundaryRe.FindAllStringSubmatch(protected, -1)

	var sentences []string
	for i, part := range parts {
		if i < len(marks) {
			part += marks[i][1]
		}
		for j, abbr := range abbreviations {
			part = strings.ReplaceAll(part, fmt.Sprintf("\x00%d\x00", j), abbr)
		}
		part = strings.TrimSpace(part)
		if len(part) >= 10 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// sentencesContaining returns sentences that contain any of the given
// lower-cased keywords.
func sentencesContaining(sentences []string, keywords ...string) []string {
	var out []string
	for _, s := range sentences {
		low := strings.ToLower(s)
		for _, kw := range keywords {
			if strings.Contains(low, kw) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
