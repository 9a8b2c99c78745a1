package mock

import "github.com/fwojciec/shamela"

var _ shamela.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of shamela.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*shamela.BookMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*shamela.BookMetadata, error) {
	return e.ExtractMetadataFn(html)
}

var _ shamela.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of shamela.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string, skipFirstPage bool) (string, error)
	ExtractBookFn    func(files []string) (string, error)
}

func (e *ContentExtractor) ExtractContent(html string, skipFirstPage bool) (string, error) {
	return e.ExtractContentFn(html, skipFirstPage)
}

func (e *ContentExtractor) ExtractBook(files []string) (string, error) {
	return e.ExtractBookFn(files)
}
