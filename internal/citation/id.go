package citation

import (
	"crypto/md5"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxIDAuthorLen caps the author fragment embedded in a citation ID.
const maxIDAuthorLen = 10

// CitationID derives the stable identifier for a record from its first
// author, year, and title: {author}_{year}_{hash8}. The same logical
// source always maps to the same ID.
func CitationID(title string, firstAuthor string, year int) string {
	author := normalizeSurname(firstAuthor)
	if author == "" {
		author = "unknown"
	}
	if len(author) > maxIDAuthorLen {
		author = author[:maxIDAuthorLen]
	}

	yearPart := "nd"
	if year > 0 {
		yearPart = fmt.Sprintf("%d", year)
	}

	sum := md5.Sum([]byte(fmt.Sprintf("%s|%s|%d", title, firstAuthor, year)))
	return fmt.Sprintf("%s_%s_%x", author, yearPart, sum[:4])
}

// normalizeTitle produces the dedup key for a title: unicode-folded,
// lower-cased, with all whitespace and punctuation removed.
func normalizeTitle(title string) string {
	folded := foldUnicode(title)
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// normalizeSurname extracts and lower-cases the surname from an author
// string. "Last, First" takes the part before the comma; otherwise the
// final whitespace-separated token is used.
func normalizeSurname(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return ""
	}
	if i := strings.Index(author, ","); i >= 0 {
		author = author[:i]
	} else if fields := strings.Fields(author); len(fields) > 0 {
		author = fields[len(fields)-1]
	}

	folded := foldUnicode(author)
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// authorKey builds an order-independent dedup key from an author list:
// the sorted set of normalized surnames.
func authorKey(authors []string) string {
	seen := make(map[string]bool, len(authors))
	var surnames []string
	for _, a := range authors {
		s := normalizeSurname(a)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		surnames = append(surnames, s)
	}
	// Insertion sort; author lists are tiny.
	for i := 1; i < len(surnames); i++ {
		for j := i; j > 0 && surnames[j] < surnames[j-1]; j-- {
			surnames[j], surnames[j-1] = surnames[j-1], surnames[j]
		}
	}
	return strings.Join(surnames, "|")
}

// foldUnicode decomposes accented characters and drops combining marks so
// that "Müller" and "Muller" normalize to the same key.
func foldUnicode(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
