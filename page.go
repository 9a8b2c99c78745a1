package shamela

import "context"

// PageExt is the file extension of Shamela HTML export files.
const PageExt = ".htm"

// PageReader reads an export file from storage as UTF-8 HTML.
type PageReader interface {
	ReadPage(ctx context.Context, path string) (string, error)
}

// TextWriter persists the body text of a book.
type TextWriter interface {
	WriteText(ctx context.Context, bookID string, text string) error
}

// PathKind describes how a filesystem path is processed.
type PathKind int

// PathKind constants.
const (
	PathUnsupported PathKind = iota
	PathSingleFile
	PathMultiFileBook
	PathContainer
)

func (k PathKind) String() string {
	switch k {
	case PathSingleFile:
		return "single_file"
	case PathMultiFileBook:
		return "multifile_book"
	case PathContainer:
		return "container_dir"
	default:
		return "unsupported"
	}
}
