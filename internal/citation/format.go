package citation

import (
	"fmt"
	"strings"

	"github.com/sells-group/scholar-cli/internal/model"
)

// Style selects a citation rendering style.
type Style string

const (
	StyleAPA     Style = "apa"
	StyleMLA     Style = "mla"
	StyleChicago Style = "chicago"
	StyleIEEE    Style = "ieee"
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleAPA:
		return StyleAPA, true
	case StyleMLA:
		return StyleMLA, true
	case StyleChicago:
		return StyleChicago, true
	case StyleIEEE:
		return StyleIEEE, true
	}
	return "", false
}

// incompleteMarker is appended to every rendered form of a citation that
// is missing title, authors, or year. It is never silently dropped.
const incompleteMarker = " [Incomplete citation]"

// apaMaxAuthors is the APA 7th-edition listing cap: 19 authors, an
// ellipsis, then the final author.
const apaMaxAuthors = 20

// ieeeEtAlThreshold is the author count above which IEEE collapses the
// list to "et al.".
const ieeeEtAlThreshold = 6

// Format renders a single bibliography entry in the given style. The
// number is used by IEEE ([N] prefix) and ignored elsewhere.
func Format(c *model.Citation, style Style, number int) string {
	var entry string
	switch style {
	case StyleMLA:
		entry = formatMLA(c)
	case StyleChicago:
		entry = formatChicago(c)
	case StyleIEEE:
		entry = formatIEEE(c, number)
	default:
		entry = formatAPA(c)
	}
	if c.IsIncomplete() {
		entry += incompleteMarker
	}
	return entry
}

// Inline renders an in-text citation fragment. The page is used by MLA;
// the number is used by IEEE.
func Inline(c *model.Citation, style Style, page string, number int) string {
	var frag string
	switch style {
	case StyleMLA:
		frag = inlineAuthorPage(c, page, " and ")
	case StyleChicago:
		frag = inlineAuthorYear(c, " and ", "")
	case StyleIEEE:
		frag = fmt.Sprintf("[%d]", number)
	default:
		frag = inlineAuthorYear(c, " & ", ", ")
	}
	if c.IsIncomplete() {
		frag += incompleteMarker
	}
	return frag
}

// inlineAuthorYear renders (Surname, Year) forms. APA joins two authors
// with "&" and separates year with a comma; Chicago uses "and" and a
// space.
func inlineAuthorYear(c *model.Citation, pairJoin, yearSep string) string {
	year := "n.d."
	if c.Year > 0 {
		year = fmt.Sprintf("%d", c.Year)
	}
	names := inlineNames(c.Authors, pairJoin)
	if yearSep == "" {
		return fmt.Sprintf("(%s %s)", names, year)
	}
	return fmt.Sprintf("(%s%s%s)", names, yearSep, year)
}

// inlineAuthorPage renders the MLA (Surname Page) form.
func inlineAuthorPage(c *model.Citation, page, pairJoin string) string {
	names := inlineNames(c.Authors, pairJoin)
	if page != "" {
		return fmt.Sprintf("(%s %s)", names, page)
	}
	return fmt.Sprintf("(%s)", names)
}

// inlineNames renders the author part of an inline citation: one surname,
// two joined, or "First et al." at three or more.
func inlineNames(authors []string, pairJoin string) string {
	switch len(authors) {
	case 0:
		return "Anonymous"
	case 1:
		return surnameOf(authors[0])
	case 2:
		return surnameOf(authors[0]) + pairJoin + surnameOf(authors[1])
	default:
		return surnameOf(authors[0]) + " et al."
	}
}

// formatAPA renders: Authors (Year). Title. Venue, Volume(Issue), Pages.
func formatAPA(c *model.Citation) string {
	var b strings.Builder
	b.WriteString(apaAuthors(c.Authors))
	if c.Year > 0 {
		fmt.Fprintf(&b, " (%d).", c.Year)
	} else {
		b.WriteString(" (n.d.).")
	}
	if c.Title != "" {
		b.WriteString(" " + strings.TrimRight(c.Title, ".") + ".")
	}
	if c.Venue != "" {
		b.WriteString(" " + c.Venue)
		if c.Volume != "" {
			b.WriteString(", " + c.Volume)
			if c.Issue != "" {
				b.WriteString("(" + c.Issue + ")")
			}
		}
		if c.Pages != "" {
			b.WriteString(", " + c.Pages)
		}
		b.WriteString(".")
	}
	if c.DOI != "" {
		b.WriteString(" https://doi.org/" + c.DOI)
	} else if c.URL != "" {
		b.WriteString(" " + c.URL)
	}
	return strings.TrimSpace(b.String())
}

// formatMLA renders: Authors. "Title." Venue, vol. V, no. I, Year, pp. P.
func formatMLA(c *model.Citation) string {
	var b strings.Builder
	b.WriteString(narrativeAuthors(c.Authors))
	if c.Title != "" {
		fmt.Fprintf(&b, ` "%s."`, strings.TrimRight(c.Title, "."))
	}
	if c.Venue != "" {
		b.WriteString(" " + c.Venue)
		if c.Volume != "" {
			b.WriteString(", vol. " + c.Volume)
		}
		if c.Issue != "" {
			b.WriteString(", no. " + c.Issue)
		}
	}
	if c.Year > 0 {
		fmt.Fprintf(&b, ", %d", c.Year)
	}
	if c.Pages != "" {
		b.WriteString(", pp. " + c.Pages)
	}
	b.WriteString(".")
	return strings.TrimSpace(b.String())
}

// formatChicago renders: Authors. Year. "Title." Venue V (I): P.
func formatChicago(c *model.Citation) string {
	var b strings.Builder
	b.WriteString(narrativeAuthors(c.Authors))
	if c.Year > 0 {
		fmt.Fprintf(&b, " %d.", c.Year)
	} else {
		b.WriteString(" n.d.")
	}
	if c.Title != "" {
		fmt.Fprintf(&b, ` "%s."`, strings.TrimRight(c.Title, "."))
	}
	if c.Venue != "" {
		b.WriteString(" " + c.Venue)
		if c.Volume != "" {
			b.WriteString(" " + c.Volume)
			if c.Issue != "" {
				b.WriteString(" (" + c.Issue + ")")
			}
		}
		if c.Pages != "" {
			b.WriteString(": " + c.Pages)
		}
		b.WriteString(".")
	}
	return strings.TrimSpace(b.String())
}

// formatIEEE renders: [N] F. M. Surname, "Title," Venue, vol. V, no. I,
// pp. P, Year.
func formatIEEE(c *model.Citation, number int) string {
	var b strings.Builder
	if number > 0 {
		fmt.Fprintf(&b, "[%d] ", number)
	}
	b.WriteString(ieeeAuthors(c.Authors))
	if c.Title != "" {
		fmt.Fprintf(&b, ` "%s,"`, strings.TrimRight(c.Title, "."))
	}
	if c.Venue != "" {
		b.WriteString(" " + c.Venue)
		if c.Volume != "" {
			b.WriteString(", vol. " + c.Volume)
		}
		if c.Issue != "" {
			b.WriteString(", no. " + c.Issue)
		}
		if c.Pages != "" {
			b.WriteString(", pp. " + c.Pages)
		}
	}
	if c.Year > 0 {
		fmt.Fprintf(&b, ", %d", c.Year)
	}
	b.WriteString(".")
	return strings.TrimSpace(b.String())
}

// apaAuthors renders "Surname, F. M." author lists, ampersand before the
// final author, truncated with an ellipsis past the APA cap.
func apaAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Anonymous."
	}

	render := func(a string) string {
		last, first := splitName(a)
		ini := initials(first)
		if ini == "" {
			return last
		}
		return last + ", " + ini
	}

	if len(authors) > apaMaxAuthors {
		var parts []string
		for _, a := range authors[:apaMaxAuthors-1] {
			parts = append(parts, render(a))
		}
		return strings.Join(parts, ", ") + ", ... " + render(authors[len(authors)-1]) + "."
	}

	if len(authors) == 1 {
		return render(authors[0]) + "."
	}
	var parts []string
	for _, a := range authors[:len(authors)-1] {
		parts = append(parts, render(a))
	}
	return strings.Join(parts, ", ") + ", & " + render(authors[len(authors)-1]) + "."
}

// narrativeAuthors renders MLA/Chicago author lists: first author
// inverted, the rest in natural order, "et al." at three or more.
func narrativeAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return "Anonymous."
	case 1:
		return invertedName(authors[0]) + "."
	case 2:
		return invertedName(authors[0]) + ", and " + naturalName(authors[1]) + "."
	default:
		return invertedName(authors[0]) + ", et al."
	}
}

// ieeeAuthors renders "F. M. Surname" lists, collapsing to "et al." past
// six authors.
func ieeeAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Anonymous,"
	}

	render := func(a string) string {
		last, first := splitName(a)
		ini := initials(first)
		if ini == "" {
			return last
		}
		return ini + " " + last
	}

	if len(authors) > ieeeEtAlThreshold {
		return render(authors[0]) + " et al.,"
	}
	if len(authors) == 1 {
		return render(authors[0]) + ","
	}
	var parts []string
	for _, a := range authors[:len(authors)-1] {
		parts = append(parts, render(a))
	}
	return strings.Join(parts, ", ") + " and " + render(authors[len(authors)-1]) + ","
}

// splitName separates "Last, First" into its parts; a name without a
// comma treats the final word as the surname.
func splitName(author string) (last, first string) {
	author = strings.TrimSpace(author)
	if i := strings.Index(author, ","); i >= 0 {
		return strings.TrimSpace(author[:i]), strings.TrimSpace(author[i+1:])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[len(fields)-1], strings.Join(fields[:len(fields)-1], " ")
}

// surnameOf returns the display surname of an author string.
func surnameOf(author string) string {
	last, _ := splitName(author)
	return last
}

// invertedName renders "Last, First".
func invertedName(author string) string {
	last, first := splitName(author)
	if first == "" {
		return last
	}
	return last + ", " + first
}

// naturalName renders "First Last".
func naturalName(author string) string {
	last, first := splitName(author)
	if first == "" {
		return last
	}
	return first + " " + last
}

// initials renders "F. M." from a given-name string, preserving initials
// that are already abbreviated.
func initials(first string) string {
	var parts []string
	for _, w := range strings.Fields(first) {
		r := []rune(strings.TrimSuffix(w, "."))
		if len(r) == 0 {
			continue
		}
		parts = append(parts, strings.ToUpper(string(r[0]))+".")
	}
	return strings.Join(parts, " ")
}
