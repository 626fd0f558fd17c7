package citation

import (
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// Manager owns the citation collection. It is the only authoritative
// holder of Citation records; callers receive copies. Not safe for
// concurrent mutation; the surrounding pipeline invokes it sequentially.
type Manager struct {
	citations map[string]*model.Citation
	order     []string // insertion order of citation IDs
	dedup     map[string]string // normalizedTitle|authorKey -> citation ID
}

// NewManager creates an empty citation manager.
func NewManager() *Manager {
	return &Manager{
		citations: make(map[string]*model.Citation),
		dedup:     make(map[string]string),
	}
}

// CreateFromMetadata builds a Citation from explicit fields and computes
// its ID. It does not insert; callers add via Add.
func CreateFromMetadata(title string, authors []string, year int, venue string, venueType model.VenueType, opts ...MetadataOption) *model.Citation {
	c := &model.Citation{
		Title:     title,
		Authors:   authors,
		Year:      year,
		Venue:     venue,
		VenueType: venueType,
	}
	if c.VenueType == "" {
		c.VenueType = model.VenueOther
	}
	for _, opt := range opts {
		opt(c)
	}
	c.CitationID = CitationID(c.Title, c.FirstAuthor(), c.Year)
	return c
}

// MetadataOption sets an optional Citation field during construction.
type MetadataOption func(*model.Citation)

func WithVolume(v string) MetadataOption  { return func(c *model.Citation) { c.Volume = v } }
func WithIssue(v string) MetadataOption   { return func(c *model.Citation) { c.Issue = v } }
func WithPages(v string) MetadataOption   { return func(c *model.Citation) { c.Pages = v } }
func WithDOI(v string) MetadataOption     { return func(c *model.Citation) { c.DOI = v } }
func WithURL(v string) MetadataOption     { return func(c *model.Citation) { c.URL = v } }
func WithPDFURL(v string) MetadataOption  { return func(c *model.Citation) { c.PDFURL = v } }
func WithAbstract(v string) MetadataOption {
	return func(c *model.Citation) { c.Abstract = v }
}
func WithCitationCount(n int) MetadataOption {
	return func(c *model.Citation) { c.CitationCount = n }
}
func WithOpenAccess(oa bool) MetadataOption {
	return func(c *model.Citation) { c.IsOpenAccess = oa }
}

// Add inserts a citation unless a duplicate already exists. A duplicate
// is any stored citation with a matching normalized title and an
// identical normalized author set (order-independent). On a duplicate
// the existing ID is returned and the new record is discarded; first
// write wins, fields are not merged.
func (m *Manager) Add(c *model.Citation) string {
	if c.CitationID == "" {
		c.CitationID = CitationID(c.Title, c.FirstAuthor(), c.Year)
	}

	key := normalizeTitle(c.Title) + "|" + authorKey(c.Authors)
	if existing, ok := m.dedup[key]; ok {
		zap.L().Debug("citation: duplicate rejected",
			zap.String("existing_id", existing),
			zap.String("title", c.Title),
		)
		return existing
	}

	if _, ok := m.citations[c.CitationID]; !ok {
		m.order = append(m.order, c.CitationID)
	}
	stored := *c
	m.citations[c.CitationID] = &stored
	m.dedup[key] = c.CitationID
	return c.CitationID
}

// Get returns a copy of the citation with the given ID.
func (m *Manager) Get(id string) (model.Citation, bool) {
	c, ok := m.citations[id]
	if !ok {
		return model.Citation{}, false
	}
	return *c, true
}

// Remove deletes a citation from the collection.
func (m *Manager) Remove(id string) bool {
	c, ok := m.citations[id]
	if !ok {
		return false
	}
	delete(m.citations, id)
	delete(m.dedup, normalizeTitle(c.Title)+"|"+authorKey(c.Authors))
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns copies of all citations in insertion order.
func (m *Manager) List() []model.Citation {
	out := make([]model.Citation, 0, len(m.order))
	for _, id := range m.order {
		if c, ok := m.citations[id]; ok {
			out = append(out, *c)
		}
	}
	return out
}

// Size returns the number of stored citations.
func (m *Manager) Size() int {
	return len(m.citations)
}
