package goquery

import (
	"strings"

	"github.com/fwojciec/shamela"
	"golang.org/x/net/html"
)

// authorText joins the non-empty text fragments that follow an author label
// up to the next label or paragraph.
func authorText(label *html.Node) string {
	var parts []string
	for n := range siblingsUntil(label, isLabelBoundary) {
		if text := nodeText(n); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// setAuthor stores the author name and takes the death year from the first
// number anywhere in the author text, not only from a "(ت 728هـ)" note.
// Parenthesized notes are removed from the name after the year is taken.
func setAuthor(book *shamela.BookMetadata, text string) {
	if year, ok := shamela.FirstNumber(text); ok {
		book.AuthorDeathYear = year
	}
	book.Author = shamela.StripParentheticals(text)
}
