package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shamela"
)

// Ensure ContentExtractor implements shamela.ContentExtractor at compile time.
var _ shamela.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor converts export pages into plain text with markdown
// headings for section titles.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractContent returns the cleaned text of every page in the file.
func (e *ContentExtractor) ExtractContent(rawHTML string, skipFirstPage bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", shamela.Errorf(shamela.EINVALID, "failed to parse HTML: %v", err)
	}

	pages := doc.Find("." + classPageText)
	if skipFirstPage && pages.Length() > 0 {
		pages = pages.Slice(1, goquery.ToEnd)
	}

	var body strings.Builder
	pages.Each(func(_ int, page *goquery.Selection) {
		writePage(&body, page)
		body.WriteString("\n")
	})

	return shamela.CleanText(body.String()), nil
}

// ExtractBook returns the cleaned text of the ordered files of one book.
// The metadata page is skipped in the first file only.
func (e *ContentExtractor) ExtractBook(files []string) (string, error) {
	var combined strings.Builder
	for i, file := range files {
		content, err := e.ExtractContent(file, i == 0)
		if err != nil {
			return "", err
		}
		combined.WriteString(content)
		combined.WriteString("\n\n")
	}
	return shamela.CleanText(combined.String()), nil
}

// writePage writes the text of the direct children of a page in document order.
func writePage(b *strings.Builder, page *goquery.Selection) {
	for _, n := range page.Contents().Nodes {
		switch classify(n) {
		case nodeHeading:
			if text := nodeText(n); text != "" {
				b.WriteString("\n## ")
				b.WriteString(text)
				b.WriteString("\n")
			}
		case nodeParagraph, nodeTextNode:
			if text := nodeText(n); text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		case nodeDecoration, nodeOther:
		}
	}
}
