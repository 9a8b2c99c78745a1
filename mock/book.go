package mock

import (
	"context"

	"github.com/fwojciec/shamela"
)

var _ shamela.BookService = (*BookService)(nil)

// BookService is a mock implementation of shamela.BookService.
type BookService struct {
	CreateBookFn   func(ctx context.Context, book *shamela.BookMetadata) error
	FindBookByIDFn func(ctx context.Context, id string) (*shamela.BookMetadata, error)
	FindBooksFn    func(ctx context.Context, filter shamela.BookFilter) ([]*shamela.BookMetadata, error)
	DeleteBookFn   func(ctx context.Context, id string) error
}

func (s *BookService) CreateBook(ctx context.Context, book *shamela.BookMetadata) error {
	return s.CreateBookFn(ctx, book)
}

func (s *BookService) FindBookByID(ctx context.Context, id string) (*shamela.BookMetadata, error) {
	return s.FindBookByIDFn(ctx, id)
}

func (s *BookService) FindBooks(ctx context.Context, filter shamela.BookFilter) ([]*shamela.BookMetadata, error) {
	return s.FindBooksFn(ctx, filter)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.DeleteBookFn(ctx, id)
}
