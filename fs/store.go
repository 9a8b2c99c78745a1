package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/shamela"
)

// MetadataFileName is the name of the metadata index in an output directory.
const MetadataFileName = "metadata.json"

// Ensure MetadataStore implements shamela.BookService at compile time.
var _ shamela.BookService = (*MetadataStore)(nil)

// MetadataStore keeps the metadata of every book extracted into a directory
// in a single JSON object keyed by book ID.
//
// The whole file is rewritten after every change. The store is not safe for
// concurrent use, and concurrent processes writing the same directory
// overwrite each other's changes.
type MetadataStore struct {
	dir   string
	books map[string]*shamela.BookMetadata
}

// NewMetadataStore creates a new MetadataStore for the given directory.
func NewMetadataStore(dir string) *MetadataStore {
	return &MetadataStore{
		dir:   dir,
		books: make(map[string]*shamela.BookMetadata),
	}
}

// Path returns the path of the metadata file.
func (s *MetadataStore) Path() string {
	return filepath.Join(s.dir, MetadataFileName)
}

// Open creates the directory if needed and loads the existing metadata file.
// A missing, unreadable or malformed file leaves the store empty; the next
// write replaces it.
func (s *MetadataStore) Open() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	s.books = make(map[string]*shamela.BookMetadata)

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil
	}

	var books map[string]*shamela.BookMetadata
	if err := json.Unmarshal(data, &books); err != nil {
		return nil
	}
	for id, book := range books {
		if book == nil {
			continue
		}
		book.ID = id
		s.books[id] = book
	}
	return nil
}

// CreateBook adds or replaces a book and rewrites the metadata file.
func (s *MetadataStore) CreateBook(ctx context.Context, book *shamela.BookMetadata) error {
	if err := book.Validate(); err != nil {
		return err
	}

	stored := *book
	s.books[book.ID] = &stored
	return s.save()
}

// FindBookByID retrieves a book by ID.
func (s *MetadataStore) FindBookByID(ctx context.Context, id string) (*shamela.BookMetadata, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, shamela.Errorf(shamela.ENOTFOUND, "book not found")
	}
	found := *book
	return &found, nil
}

// FindBooks retrieves books matching the filter, ordered by ID.
func (s *MetadataStore) FindBooks(ctx context.Context, filter shamela.BookFilter) ([]*shamela.BookMetadata, error) {
	ids := make([]string, 0, len(s.books))
	for id := range s.books {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var books []*shamela.BookMetadata
	for _, id := range ids {
		book := s.books[id]
		if filter.ID != nil && book.ID != *filter.ID {
			continue
		}
		if filter.Author != nil && book.Author != *filter.Author {
			continue
		}
		if filter.Section != nil && book.Section != *filter.Section {
			continue
		}
		found := *book
		books = append(books, &found)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(books) {
			return nil, nil
		}
		books = books[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(books) {
		books = books[:filter.Limit]
	}
	return books, nil
}

// DeleteBook removes a book and rewrites the metadata file.
func (s *MetadataStore) DeleteBook(ctx context.Context, id string) error {
	if _, ok := s.books[id]; !ok {
		return shamela.Errorf(shamela.ENOTFOUND, "book not found")
	}
	delete(s.books, id)
	return s.save()
}

// save writes the metadata file to a temporary file and renames it into
// place so that an interrupted write never leaves a truncated index.
func (s *MetadataStore) save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.books); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, strings.TrimSuffix(MetadataFileName, ".json")+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path())
}
