// Package goquery implements Shamela export parsing using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shamela"
)

// Ensure MetadataExtractor implements shamela.MetadataExtractor at compile time.
var _ shamela.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads the labelled fields of the first page of an export.
type MetadataExtractor struct {
	// NewID generates book IDs. Defaults to shamela.NewBookID.
	NewID shamela.IDGenerator
}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{NewID: shamela.NewBookID}
}

// ExtractMetadata parses the metadata page of an export file.
//
// Each span.title element on the page is a label. Its value is the text of
// the node right after it, except for the author, whose value runs over all
// following nodes up to the next span or paragraph. Labels that match no
// known field are kept in Extra under their own text, so an empty label
// stores its value under the empty key.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*shamela.BookMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, shamela.Errorf(shamela.EINVALID, "failed to parse HTML: %v", err)
	}

	page := doc.Find("." + classPageText).First()
	if page.Length() == 0 {
		return nil, shamela.Errorf(shamela.EMETADATA, "metadata page not found")
	}

	newID := e.NewID
	if newID == nil {
		newID = shamela.NewBookID
	}
	book := &shamela.BookMetadata{ID: newID()}

	page.Find("span." + classTitle).Each(func(_ int, label *goquery.Selection) {
		text := strings.TrimSpace(label.Text())
		field, ok := shamela.LookupField(text)
		if !ok {
			field = shamela.Field(text)
		}

		node := label.Nodes[0]
		if field == shamela.FieldAuthor {
			setAuthor(book, authorText(node))
			return
		}

		if node.NextSibling == nil {
			return
		}
		value := nodeText(node.NextSibling)
		if field == shamela.FieldPages {
			if n, ok := shamela.FirstNumber(value); ok {
				value = n
			}
		}
		book.Set(field, value)
	})

	if book.BookName == "" {
		if title := page.Find("." + classTitle).First(); title.Length() > 0 {
			book.BookName = strings.TrimSpace(title.Text())
		}
	}

	return book, nil
}
