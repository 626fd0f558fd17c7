package model

// VenueType classifies the publication outlet of a source.
type VenueType string

const (
	VenueJournal    VenueType = "journal"
	VenueConference VenueType = "conference"
	VenueBook       VenueType = "book"
	VenuePreprint   VenueType = "preprint"
	VenueThesis     VenueType = "thesis"
	VenueWeb        VenueType = "web"
	VenueOther      VenueType = "other"
)

// Citation is one normalized bibliographic record. Authors are stored in
// "Last, First" form, in source order. CitationID is derived from the first
// author, year, and title and is stable across re-extraction of the same
// logical source.
type Citation struct {
	CitationID    string    `json:"citation_id"`
	Authors       []string  `json:"authors"`
	Year          int       `json:"year,omitempty"`
	Title         string    `json:"title"`
	Venue         string    `json:"venue,omitempty"`
	VenueType     VenueType `json:"venue_type"`
	DOI           string    `json:"doi,omitempty"`
	URL           string    `json:"url,omitempty"`
	PDFURL        string    `json:"pdf_url,omitempty"`
	Volume        string    `json:"volume,omitempty"`
	Issue         string    `json:"issue,omitempty"`
	Pages         string    `json:"pages,omitempty"`
	Abstract      string    `json:"abstract,omitempty"`
	CitationCount int       `json:"citation_count,omitempty"`
	IsOpenAccess  bool      `json:"is_open_access,omitempty"`
}

// IsIncomplete reports whether the record is missing any of the three
// identifying fields (title, authors, year). Incomplete citations are
// always rendered with a visible marker, never dropped.
func (c *Citation) IsIncomplete() bool {
	return c.Title == "" || len(c.Authors) == 0 || c.Year == 0
}

// FirstAuthor returns the first author, or "" if there are none.
func (c *Citation) FirstAuthor() string {
	if len(c.Authors) == 0 {
		return ""
	}
	return c.Authors[0]
}
