package citation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sells-group/scholar-cli/internal/model"
)

// Free-text extraction patterns, compiled once.
var (
	quotedTitleRe = regexp.MustCompile(`["“]([^"”]{10,})["”]`)
	titleLineRe   = regexp.MustCompile(`(?im)^\s*title\s*:\s*(.+)$`)

	// "Last, F." or "Last, First" author patterns.
	invertedAuthorRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:-[A-Z][a-z]+)?),\s*([A-Z](?:\.|[a-z]+)(?:\s*[A-Z]\.)?)`)
	byAuthorRe       = regexp.MustCompile(`\bby\s+([A-Z][a-z]+(?:\s+[A-Z]\.?)?(?:\s+[A-Z][a-z]+)+)`)

	parenYearRe = regexp.MustCompile(`\((\d{4})[a-z]?\)`)
	labelYearRe = regexp.MustCompile(`(?i)(?:published|year|date)\s*:?\s*(\d{4})`)
	bareYearRe  = regexp.MustCompile(`\b(\d{4})\b`)
)

// ExtractFromText is the regex fallback for unstructured text. It returns
// nil only when nothing identifying can be found at all; partial records
// are returned flagged incomplete.
func ExtractFromText(text, url string) *model.Citation {
	text = strings.TrimSpace(text)
	if text == "" && url == "" {
		return nil
	}

	c := &model.Citation{
		URL:       url,
		VenueType: model.VenueOther,
	}

	c.Title = extractTitleFromText(text)
	c.Authors = extractAuthorsFromText(text)
	c.Year = extractYearFromText(text)
	if m := doiRe.FindString(text); m != "" {
		c.DOI = strings.TrimRight(m, ".,;)")
	}

	if c.Title == "" && len(c.Authors) == 0 && c.Year == 0 && c.DOI == "" && url == "" {
		return nil
	}

	idTitle := c.Title
	if idTitle == "" {
		idTitle = url
	}
	c.CitationID = CitationID(idTitle, c.FirstAuthor(), c.Year)
	return c
}

// extractTitleFromText prefers a quoted substring, then a "Title:" line,
// then the first substantial non-empty line.
func extractTitleFromText(text string) string {
	if m := quotedTitleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := titleLineRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) >= 20 && !strings.HasPrefix(line, "http") {
			return line
		}
	}
	return ""
}

// extractAuthorsFromText finds "Last, First" patterns, falling back to a
// "by Name" attribution.
func extractAuthorsFromText(text string) []string {
	// Only scan the head of the text; author blocks front papers and
	// deep matches are usually reference-list noise.
	head := text
	if len(head) > 2000 {
		head = head[:2000]
	}

	matches := invertedAuthorRe.FindAllStringSubmatch(head, 8)
	if len(matches) > 0 {
		var authors []string
		seen := make(map[string]bool)
		for _, m := range matches {
			name := m[1] + ", " + m[2]
			if !seen[name] {
				seen[name] = true
				authors = append(authors, name)
			}
		}
		return authors
	}

	if m := byAuthorRe.FindStringSubmatch(head); m != nil {
		return []string{strings.TrimSpace(m[1])}
	}
	return nil
}

// extractYearFromText prefers a parenthesized year, then a labelled year,
// then any bare 4-digit token in the plausible publication range.
func extractYearFromText(text string) int {
	if m := parenYearRe.FindStringSubmatch(text); m != nil {
		if y := plausibleYear(m[1]); y != 0 {
			return y
		}
	}
	if m := labelYearRe.FindStringSubmatch(text); m != nil {
		if y := plausibleYear(m[1]); y != 0 {
			return y
		}
	}
	for _, m := range bareYearRe.FindAllStringSubmatch(text, -1) {
		if y := plausibleYear(m[1]); y != 0 {
			return y
		}
	}
	return 0
}

// plausibleYear bounds candidate years to 1900..current+1.
func plausibleYear(s string) int {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if y < 1900 || y > time.Now().Year()+1 {
		return 0
	}
	return y
}
