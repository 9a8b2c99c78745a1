package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/shamela"
)

// TextExt is the extension of body text files.
const TextExt = ".txt"

// Ensure TextWriter implements shamela.TextWriter at compile time.
var _ shamela.TextWriter = (*TextWriter)(nil)

// TextWriter writes book bodies as <book_id>.txt files to a directory.
type TextWriter struct {
	baseDir string
}

// NewTextWriter creates a new TextWriter that writes to the given base directory.
func NewTextWriter(baseDir string) *TextWriter {
	return &TextWriter{baseDir: baseDir}
}

// TextPath returns the path of the body text file for a book.
func (w *TextWriter) TextPath(bookID string) string {
	return filepath.Join(w.baseDir, bookID+TextExt)
}

// WriteText writes the body text of a book to disk.
func (w *TextWriter) WriteText(ctx context.Context, bookID string, text string) error {
	if bookID == "" {
		return shamela.Errorf(shamela.EINVALID, "book ID required")
	}
	if filepath.Base(bookID) != bookID {
		return shamela.Errorf(shamela.EINVALID, "invalid book ID %q", bookID)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(w.TextPath(bookID), []byte(text), 0644)
}
