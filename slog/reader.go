// Package slog provides log/slog decorators for shamela services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shamela"
)

// Ensure LoggingPageReader implements shamela.PageReader.
var _ shamela.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with debug logging.
type LoggingPageReader struct {
	next   shamela.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next shamela.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read page",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, path)
}

// Ensure LoggingTextWriter implements shamela.TextWriter.
var _ shamela.TextWriter = (*LoggingTextWriter)(nil)

// LoggingTextWriter wraps a TextWriter with debug logging.
type LoggingTextWriter struct {
	next   shamela.TextWriter
	logger *slog.Logger
}

// NewLoggingTextWriter creates a new LoggingTextWriter.
func NewLoggingTextWriter(next shamela.TextWriter, logger *slog.Logger) *LoggingTextWriter {
	return &LoggingTextWriter{next: next, logger: logger}
}

// WriteText delegates to the wrapped writer and logs the operation.
func (w *LoggingTextWriter) WriteText(ctx context.Context, bookID string, text string) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write text",
			"book_id", bookID,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteText(ctx, bookID, text)
}
