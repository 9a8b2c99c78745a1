package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shamela"
)

// Ensure LoggingBookService implements shamela.BookService.
var _ shamela.BookService = (*LoggingBookService)(nil)

// LoggingBookService wraps a BookService with debug logging.
type LoggingBookService struct {
	next   shamela.BookService
	logger *slog.Logger
}

// NewLoggingBookService creates a new LoggingBookService.
func NewLoggingBookService(next shamela.BookService, logger *slog.Logger) *LoggingBookService {
	return &LoggingBookService{next: next, logger: logger}
}

// CreateBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) CreateBook(ctx context.Context, book *shamela.BookMetadata) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create book",
			"book_id", book.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBook(ctx, book)
}

// FindBookByID delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBookByID(ctx context.Context, id string) (book *shamela.BookMetadata, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find book",
			"book_id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBookByID(ctx, id)
}

// FindBooks delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBooks(ctx context.Context, filter shamela.BookFilter) (books []*shamela.BookMetadata, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find books",
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBooks(ctx, filter)
}

// DeleteBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) DeleteBook(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete book",
			"book_id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBook(ctx, id)
}
