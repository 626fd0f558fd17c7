package citation

import (
	"sort"
	"strings"

	"github.com/sells-group/scholar-cli/internal/model"
)

// GenerateBibliography renders every stored citation in the given style,
// entries separated by a blank line. With sortByAuthor the entries are
// ordered by the first author's normalized surname; citations with no
// author sort last, ordered by title. Without it, insertion order is
// kept.
func (m *Manager) GenerateBibliography(style Style, sortByAuthor bool) string {
	entries := m.List()
	if sortByAuthor {
		sortForBibliography(entries)
	}

	var b strings.Builder
	for i := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Format(&entries[i], style, i+1))
	}
	return b.String()
}

// sortForBibliography orders citations by first-author surname,
// case-insensitive; authorless entries go last, sorted by title.
func sortForBibliography(entries []model.Citation) {
	sort.SliceStable(entries, func(i, j int) bool {
		si := normalizeSurname(entries[i].FirstAuthor())
		sj := normalizeSurname(entries[j].FirstAuthor())
		switch {
		case si == "" && sj == "":
			return strings.ToLower(entries[i].Title) < strings.ToLower(entries[j].Title)
		case si == "":
			return false
		case sj == "":
			return true
		default:
			return si < sj
		}
	})
}
