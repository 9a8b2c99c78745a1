// Package fs provides file-based reading and storage for Shamela exports.
package fs

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/shamela"
	"golang.org/x/net/html/charset"
)

// Ensure PageReader implements shamela.PageReader at compile time.
var _ shamela.PageReader = (*PageReader)(nil)

// PageReader reads export files from disk and decodes them to UTF-8.
type PageReader struct{}

// NewPageReader creates a new PageReader.
func NewPageReader() *PageReader {
	return &PageReader{}
}

// ReadPage returns the content of the file at path as UTF-8 HTML.
// Valid UTF-8 is returned as is, even when a charset meta tag names a
// legacy encoding. Other files are decoded using their byte order mark or
// charset meta tag.
func (r *PageReader) ReadPage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodePage(data)
}

func decodePage(data []byte) (string, error) {
	// Recoded exports often keep their old windows-1256 meta tag.
	if utf8.Valid(data) {
		return string(trimBOM(data)), nil
	}

	enc, name, _ := charset.DetermineEncoding(data, "text/html")

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s page: %w", name, err)
	}
	return string(decoded), nil
}

func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
