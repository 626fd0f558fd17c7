package citation

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// AuthorList accepts either a JSON array of author strings or a single
// comma-separated string. Search providers are inconsistent about which
// they return; the union is resolved here, once, at the boundary.
type AuthorList []string

func (a *AuthorList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = trimAll(list)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = SplitAuthors(s)
	return nil
}

// FlexInt accepts a JSON number or a numeric string. Zero when absent or
// unparseable.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// ScholarResult is one search result record from an academic search
// provider.
type ScholarResult struct {
	Title         string     `json:"title"`
	Authors       AuthorList `json:"authors"`
	Year          FlexInt    `json:"year"`
	Venue         string     `json:"venue"`
	CitationCount FlexInt    `json:"citation_count"`
	URL           string     `json:"url"`
	Abstract      string     `json:"abstract"`
	DOI           string     `json:"doi"`
	PDFURL        string     `json:"pdf_url"`
}

// ExtractFromScholarResult converts a search result into a Citation.
// Partial data is kept and flagged incomplete; nil is returned only on
// total failure (no title and no URL).
func ExtractFromScholarResult(res ScholarResult) *model.Citation {
	title := strings.TrimSpace(res.Title)
	if title == "" && strings.TrimSpace(res.URL) == "" {
		zap.L().Debug("citation: scholar result has no title or url")
		return nil
	}

	c := &model.Citation{
		Title:         title,
		Authors:       res.Authors,
		Year:          int(res.Year),
		Venue:         strings.TrimSpace(res.Venue),
		VenueType:     InferVenueType(res.Venue),
		DOI:           strings.TrimSpace(res.DOI),
		URL:           strings.TrimSpace(res.URL),
		PDFURL:        strings.TrimSpace(res.PDFURL),
		Abstract:      strings.TrimSpace(res.Abstract),
		CitationCount: int(res.CitationCount),
	}
	c.CitationID = CitationID(c.Title, c.FirstAuthor(), c.Year)
	return c
}

// SplitAuthors parses a joined author string into individual names.
// Semicolons win over "and", which wins over commas. A comma-only list
// of short alternating tokens is treated as "Last, First" pairs, so
// "Vaswani, Ashish, Shazeer, Noam" yields two authors, not four.
func SplitAuthors(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, ";") {
		return trimAll(strings.Split(s, ";"))
	}
	if strings.Contains(s, " and ") {
		return trimAll(strings.Split(s, " and "))
	}

	tokens := trimAll(strings.Split(s, ","))
	if len(tokens) >= 2 && len(tokens)%2 == 0 && looksInverted(tokens) {
		var authors []string
		for i := 0; i < len(tokens); i += 2 {
			authors = append(authors, tokens[i]+", "+tokens[i+1])
		}
		return authors
	}
	return tokens
}

// looksInverted reports whether comma tokens alternate surname /
// given-name, i.e. every token is a single word or an initial.
func looksInverted(tokens []string) bool {
	for i, tok := range tokens {
		words := strings.Fields(tok)
		if len(words) > 2 {
			return false
		}
		// Odd positions should look like given names or initials.
		if i%2 == 1 && len(words) == 2 && !isInitial(words[1]) {
			return false
		}
	}
	return true
}

func isInitial(w string) bool {
	w = strings.TrimSuffix(w, ".")
	return len(w) <= 2
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Known conference abbreviations that carry no "conference" keyword.
var conferenceNames = []string{
	"neurips", "nips", "icml", "iclr", "cvpr", "iccv", "eccv",
	"acl", "emnlp", "naacl", "aaai", "ijcai", "kdd", "www",
	"siggraph", "chi", "interspeech",
}

// InferVenueType classifies a venue by name keywords. A non-empty venue
// with no matching keywords defaults to journal; an empty venue is
// "other".
func InferVenueType(venue string) model.VenueType {
	v := strings.ToLower(strings.TrimSpace(venue))
	if v == "" {
		return model.VenueOther
	}

	switch {
	case containsAny(v, "arxiv", "biorxiv", "medrxiv", "ssrn", "preprint"):
		return model.VenuePreprint
	case containsAny(v, "conference", "proceedings", "symposium", "workshop", "congress"):
		return model.VenueConference
	case containsAny(v, conferenceNames...):
		return model.VenueConference
	case containsAny(v, "thesis", "dissertation"):
		return model.VenueThesis
	case containsAny(v, "handbook", "encyclopedia", "university press", "book"):
		return model.VenueBook
	case containsAny(v, "blog", "medium.com", "substack", "wikipedia"):
		return model.VenueWeb
	default:
		return model.VenueJournal
	}
}

// containsAny checks if s contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
