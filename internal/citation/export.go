package citation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// ExportBibTeX serializes every stored citation as BibTeX to the given
// path. The file is written to a temp sibling and renamed into place so
// a failure never leaves a half-written file.
func (m *Manager) ExportBibTeX(path string) error {
	var b strings.Builder
	for _, c := range m.List() {
		b.WriteString(bibtexEntry(&c))
		b.WriteString("\n")
	}
	if err := writeFileAtomic(path, []byte(b.String())); err != nil {
		return eris.Wrap(err, "bibtex: write")
	}
	zap.L().Info("citation: exported bibtex",
		zap.String("path", path),
		zap.Int("entries", m.Size()),
	)
	return nil
}

// ExportRIS serializes every stored citation as RIS tag/value records.
func (m *Manager) ExportRIS(path string) error {
	var b strings.Builder
	for _, c := range m.List() {
		b.WriteString(risEntry(&c))
		b.WriteString("\n")
	}
	if err := writeFileAtomic(path, []byte(b.String())); err != nil {
		return eris.Wrap(err, "ris: write")
	}
	zap.L().Info("citation: exported ris",
		zap.String("path", path),
		zap.Int("entries", m.Size()),
	)
	return nil
}

// bibtexType maps a venue type to its BibTeX entry type.
func bibtexType(vt model.VenueType) string {
	switch vt {
	case model.VenueJournal:
		return "article"
	case model.VenueConference:
		return "inproceedings"
	case model.VenueBook:
		return "book"
	case model.VenueThesis:
		return "phdthesis"
	default:
		return "misc"
	}
}

func bibtexEntry(c *model.Citation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", bibtexType(c.VenueType), c.CitationID)

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %s = {%s},\n", name, value)
		}
	}

	field("author", strings.Join(c.Authors, " and "))
	field("title", c.Title)
	if c.VenueType == model.VenueConference {
		field("booktitle", c.Venue)
	} else {
		field("journal", c.Venue)
	}
	if c.Year > 0 {
		field("year", fmt.Sprintf("%d", c.Year))
	}
	field("volume", c.Volume)
	field("number", c.Issue)
	field("pages", c.Pages)
	field("doi", c.DOI)
	field("url", c.URL)

	b.WriteString("}\n")
	return b.String()
}

// risType maps a venue type to its RIS TY value.
func risType(vt model.VenueType) string {
	switch vt {
	case model.VenueJournal:
		return "JOUR"
	case model.VenueConference:
		return "CONF"
	case model.VenueBook:
		return "BOOK"
	case model.VenueThesis:
		return "THES"
	case model.VenuePreprint:
		return "UNPB"
	case model.VenueWeb:
		return "ELEC"
	default:
		return "GEN"
	}
}

func risEntry(c *model.Citation) string {
	var b strings.Builder
	tag := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s  - %s\n", name, value)
		}
	}

	tag("TY", risType(c.VenueType))
	for _, a := range c.Authors {
		tag("AU", a)
	}
	tag("TI", c.Title)
	tag("JO", c.Venue)
	if c.Year > 0 {
		tag("PY", fmt.Sprintf("%d", c.Year))
	}
	tag("VL", c.Volume)
	tag("IS", c.Issue)
	tag("SP", c.Pages)
	tag("DO", c.DOI)
	tag("UR", c.URL)
	b.WriteString("ER  -\n")
	return b.String()
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
