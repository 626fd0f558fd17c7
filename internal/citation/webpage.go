package citation

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/sells-group/scholar-cli/internal/model"
)

// doiRe matches a DOI anywhere in text.
var doiRe = regexp.MustCompile(`10\.\d{4,}/\S+`)

// yearRe4 matches a 4-digit year inside a date string.
var yearRe4 = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Meta-tag precedence chains, first match wins. Highwire (citation_*)
// tags outrank Dublin Core, which outranks social-card tags.
var (
	titleMetaChain = []string{"citation_title", "dc.title", "og:title", "twitter:title"}
	dateMetaChain  = []string{"citation_publication_date", "citation_year", "dc.date", "article:published_time"}
	doiMetaChain   = []string{"citation_doi"}
)

// pageMeta holds everything a single DOM walk collects from a page.
type pageMeta struct {
	meta        map[string][]string // lower-cased name/property -> contents, document order
	titleTag    string
	firstH1     string
	bodyText    strings.Builder
}

// ExtractFromWebpage builds a Citation from raw HTML. Each field follows
// its own precedence chain independently; a page with no extractable
// title falls back to the URL as identifying content and is flagged
// incomplete.
func ExtractFromWebpage(htmlContent, url string) *model.Citation {
	if strings.TrimSpace(htmlContent) == "" && strings.TrimSpace(url) == "" {
		return nil
	}

	pm := parsePage(htmlContent)

	c := &model.Citation{
		URL:       url,
		VenueType: model.VenueWeb,
	}

	c.Title = pm.firstMeta(titleMetaChain)
	if c.Title == "" {
		c.Title = strings.TrimSpace(pm.titleTag)
	}
	if c.Title == "" {
		c.Title = strings.TrimSpace(pm.firstH1)
	}

	c.Authors = pm.authors()
	c.Year = pm.year()
	c.DOI = pm.doi()

	if c.Title == "" {
		if c.URL == "" {
			return nil
		}
		// The URL is the sole identifying content; the record stays
		// incomplete and renders with a visible marker.
		zap.L().Debug("citation: webpage has no extractable title",
			zap.String("url", url))
	}

	idTitle := c.Title
	if idTitle == "" {
		idTitle = c.URL
	}
	c.CitationID = CitationID(idTitle, c.FirstAuthor(), c.Year)
	return c
}

// parsePage walks the DOM once and collects meta tags, the <title> text,
// the first <h1>, and body text for the DOI fallback scan.
func parsePage(content string) *pageMeta {
	pm := &pageMeta{meta: make(map[string][]string)}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse is extremely tolerant; treat a hard failure as an
		// empty page rather than an error.
		zap.L().Debug("citation: html parse failed", zap.Error(err))
		return pm
	}

	var inTitle, inH1 bool
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "meta":
				name := strings.ToLower(attr(n, "name"))
				if name == "" {
					name = strings.ToLower(attr(n, "property"))
				}
				if content := attr(n, "content"); name != "" && content != "" {
					pm.meta[name] = append(pm.meta[name], content)
				}
			case "title":
				inTitle = true
			case "h1":
				if pm.firstH1 == "" {
					inH1 = true
				}
			case "script", "style":
				return
			}
		case html.TextNode:
			if inTitle {
				pm.titleTag += n.Data
			}
			if inH1 {
				pm.firstH1 += n.Data
			}
			pm.bodyText.WriteString(n.Data)
			pm.bodyText.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				inTitle = false
			case "h1":
				inH1 = false
			}
		}
	}
	walk(doc)
	return pm
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// firstMeta returns the first content found along a precedence chain.
func (pm *pageMeta) firstMeta(chain []string) string {
	for _, name := range chain {
		if vals := pm.meta[name]; len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
	}
	return ""
}

// authors collects citation_author tags in document order, falling back
// to DC.Creator, then the generic author meta.
func (pm *pageMeta) authors() []string {
	if vals := pm.meta["citation_author"]; len(vals) > 0 {
		return trimAll(vals)
	}
	if vals := pm.meta["dc.creator"]; len(vals) > 0 {
		return trimAll(vals)
	}
	if vals := pm.meta["author"]; len(vals) > 0 {
		return SplitAuthors(vals[0])
	}
	return nil
}

// year parses a 4-digit year from the first matching date meta tag.
func (pm *pageMeta) year() int {
	raw := pm.firstMeta(dateMetaChain)
	if raw == "" {
		return 0
	}
	m := yearRe4.FindString(raw)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

// doi prefers the citation_doi meta, then a DC.Identifier with a doi:
// prefix, then a regex scan of body text.
func (pm *pageMeta) doi() string {
	if d := pm.firstMeta(doiMetaChain); d != "" {
		return strings.TrimPrefix(strings.TrimSpace(d), "doi:")
	}
	for _, ident := range pm.meta["dc.identifier"] {
		low := strings.ToLower(ident)
		if strings.HasPrefix(low, "doi:") {
			return strings.TrimSpace(ident[len("doi:"):])
		}
	}
	if m := doiRe.FindString(pm.bodyText.String()); m != "" {
		return strings.TrimRight(m, ".,;)")
	}
	return ""
}
