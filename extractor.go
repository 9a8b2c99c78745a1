package shamela

// MetadataExtractor extracts book metadata from the first page of an export.
type MetadataExtractor interface {
	// ExtractMetadata parses an HTML export file and returns the metadata
	// found on its first page, with a freshly generated book ID.
	// Returns EMETADATA if the file has no metadata page.
	ExtractMetadata(html string) (*BookMetadata, error)
}

// ContentExtractor extracts cleaned body text from export files.
type ContentExtractor interface {
	// ExtractContent returns the body text of a single HTML export file.
	// If skipFirstPage is set, the metadata page is left out.
	ExtractContent(html string, skipFirstPage bool) (string, error)

	// ExtractBook returns the combined body text of the ordered files of
	// one book. Only the first file's metadata page is left out.
	ExtractBook(files []string) (string, error)
}
