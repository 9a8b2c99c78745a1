package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/shamela"
)

// Compile-time interface verification.
var _ shamela.BookService = (*BookService)(nil)

const bookColumns = `id, book_name, author, author_death_year, section, editor, publisher,
	edition, pages, publication_date, content_length, extra`

const upsertBook = `
	INSERT INTO books (` + bookColumns + `, indexed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		book_name = excluded.book_name,
		author = excluded.author,
		author_death_year = excluded.author_death_year,
		section = excluded.section,
		editor = excluded.editor,
		publisher = excluded.publisher,
		edition = excluded.edition,
		pages = excluded.pages,
		publication_date = excluded.publication_date,
		content_length = excluded.content_length,
		extra = excluded.extra,
		indexed_at = excluded.indexed_at
`

// BookService implements shamela.BookService using SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertBook(ctx context.Context, e execer, book *shamela.BookMetadata) error {
	if err := book.Validate(); err != nil {
		return err
	}

	extra, err := encodeExtra(book.Extra)
	if err != nil {
		return err
	}

	_, err = e.ExecContext(ctx, upsertBook,
		book.ID, book.BookName, book.Author, book.AuthorDeathYear, book.Section,
		book.Editor, book.Publisher, book.Edition, book.Pages, book.PublicationDate,
		book.ContentLength, extra, time.Now().UTC().Format(time.RFC3339))
	return err
}

// CreateBook inserts a book or replaces the indexed book with the same ID.
func (s *BookService) CreateBook(ctx context.Context, book *shamela.BookMetadata) error {
	return insertBook(ctx, s.db, book)
}

// ImportBooks upserts books in a single transaction. Nothing is written if
// any book is invalid.
func (s *BookService) ImportBooks(ctx context.Context, books []*shamela.BookMetadata) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, book := range books {
		if err := insertBook(ctx, tx, book); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(row scanner) (*shamela.BookMetadata, error) {
	var book shamela.BookMetadata
	var extra string

	if err := row.Scan(&book.ID, &book.BookName, &book.Author, &book.AuthorDeathYear, &book.Section,
		&book.Editor, &book.Publisher, &book.Edition, &book.Pages, &book.PublicationDate,
		&book.ContentLength, &extra); err != nil {
		return nil, err
	}

	var err error
	if book.Extra, err = decodeExtra(extra); err != nil {
		return nil, err
	}
	return &book, nil
}

// FindBookByID retrieves a book by ID.
func (s *BookService) FindBookByID(ctx context.Context, id string) (*shamela.BookMetadata, error) {
	book, err := scanBook(s.db.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shamela.Errorf(shamela.ENOTFOUND, "book not found")
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// FindBooks retrieves books matching the filter, ordered by ID.
func (s *BookService) FindBooks(ctx context.Context, filter shamela.BookFilter) ([]*shamela.BookMetadata, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bookColumns + " FROM books WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}
	if filter.Section != nil {
		query.WriteString(" AND section = ?")
		args = append(args, *filter.Section)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*shamela.BookMetadata
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

// DeleteBook permanently removes a book from the index.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shamela.Errorf(shamela.ENOTFOUND, "book not found")
	}
	return nil
}
