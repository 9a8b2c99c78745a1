package mock

import (
	"context"

	"github.com/fwojciec/shamela"
)

var _ shamela.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of shamela.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, path string) (string, error)
}

func (r *PageReader) ReadPage(ctx context.Context, path string) (string, error) {
	return r.ReadPageFn(ctx, path)
}

var _ shamela.TextWriter = (*TextWriter)(nil)

// TextWriter is a mock implementation of shamela.TextWriter.
type TextWriter struct {
	WriteTextFn func(ctx context.Context, bookID string, text string) error
}

func (w *TextWriter) WriteText(ctx context.Context, bookID string, text string) error {
	return w.WriteTextFn(ctx, bookID, text)
}
