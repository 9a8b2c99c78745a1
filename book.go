package shamela

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Field identifies a recognized metadata field of a book.
// Its value is the key used for the field in metadata.json.
type Field string

// Field constants for the labels found on the metadata page.
const (
	FieldBookName        Field = "book_name"
	FieldAuthor          Field = "author"
	FieldSection         Field = "section"
	FieldEditor          Field = "editor"
	FieldPublisher       Field = "publisher"
	FieldEdition         Field = "edition"
	FieldPages           Field = "pages"
	FieldPublicationDate Field = "publication_date"
)

// FieldLabel maps a label pattern on the metadata page to a field.
type FieldLabel struct {
	Pattern string
	Field   Field
}

// FieldLabels is evaluated top to bottom; the first pattern contained in
// a label wins.
var FieldLabels = []FieldLabel{
	{Pattern: "الكتاب", Field: FieldBookName},
	{Pattern: "المؤلف", Field: FieldAuthor},
	{Pattern: "القسم", Field: FieldSection},
	{Pattern: "تحقيق", Field: FieldEditor},
	{Pattern: "الناشر", Field: FieldPublisher},
	{Pattern: "الطبعة", Field: FieldEdition},
	{Pattern: "عدد الصفحات", Field: FieldPages},
	{Pattern: "تاريخ النشر", Field: FieldPublicationDate},
}

// LookupField returns the field whose pattern is contained in label.
func LookupField(label string) (Field, bool) {
	for _, fl := range FieldLabels {
		if strings.Contains(label, fl.Pattern) {
			return fl.Field, true
		}
	}
	return "", false
}

// RequiredFields must be present for a book's metadata to be complete.
// Missing required fields are reported, never fatal.
var RequiredFields = []Field{FieldBookName, FieldAuthor, FieldSection}

// IDGenerator produces unique book identifiers.
type IDGenerator func() string

// NewBookID returns a random UUID. Book IDs are not derived from content,
// so extracting the same document twice yields two different IDs.
func NewBookID() string {
	return uuid.New().String()
}

// BookMetadata holds the metadata extracted from the first page of a book.
type BookMetadata struct {
	ID              string
	BookName        string
	Author          string
	AuthorDeathYear string
	Section         string
	Editor          string
	Publisher       string
	Edition         string
	Pages           string
	PublicationDate string

	// ContentLength is the number of characters in the extracted body text.
	// It stays zero until the body has been extracted.
	ContentLength int

	// Extra holds values of labels that matched no known field, keyed by
	// the label text.
	Extra map[string]string
}

// Validate returns an error if the book contains invalid fields.
func (b *BookMetadata) Validate() error {
	if b.ID == "" {
		return Errorf(EINVALID, "book ID required")
	}
	return nil
}

// Get returns the value of a known field.
func (b *BookMetadata) Get(f Field) string {
	switch f {
	case FieldBookName:
		return b.BookName
	case FieldAuthor:
		return b.Author
	case FieldSection:
		return b.Section
	case FieldEditor:
		return b.Editor
	case FieldPublisher:
		return b.Publisher
	case FieldEdition:
		return b.Edition
	case FieldPages:
		return b.Pages
	case FieldPublicationDate:
		return b.PublicationDate
	}
	return ""
}

// Set assigns the value of a known field. Unknown fields are stored in Extra.
func (b *BookMetadata) Set(f Field, value string) {
	switch f {
	case FieldBookName:
		b.BookName = value
	case FieldAuthor:
		b.Author = value
	case FieldSection:
		b.Section = value
	case FieldEditor:
		b.Editor = value
	case FieldPublisher:
		b.Publisher = value
	case FieldEdition:
		b.Edition = value
	case FieldPages:
		b.Pages = value
	case FieldPublicationDate:
		b.PublicationDate = value
	default:
		if b.Extra == nil {
			b.Extra = make(map[string]string)
		}
		b.Extra[string(f)] = value
	}
}

// MissingRequired returns the required fields that are empty, in the order
// of RequiredFields.
func (b *BookMetadata) MissingRequired() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if b.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// MarshalJSON encodes the book as a flat object. Required fields and the
// death year are null when empty; other optional fields are omitted.
// Text is left unescaped here; an encoder with HTML escaping enabled,
// such as json.Marshal, escapes it again.
func (b BookMetadata) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Extra)+11)
	for k, v := range b.Extra {
		m[k] = v
	}
	m["book_id"] = b.ID
	m["book_name"] = nullable(b.BookName)
	m["author"] = nullable(b.Author)
	m["author_death_year"] = nullable(b.AuthorDeathYear)
	m["section"] = nullable(b.Section)
	for _, f := range []Field{FieldEditor, FieldPublisher, FieldEdition, FieldPages, FieldPublicationDate} {
		if v := b.Get(f); v != "" {
			m[string(f)] = v
		} else {
			delete(m, string(f))
		}
	}
	m["content_length"] = b.ContentLength

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a flat object. Keys that are not known fields and
// hold strings are collected into Extra.
func (b *BookMetadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = BookMetadata{}
	for key, value := range raw {
		switch key {
		case "book_id":
			if err := unmarshalNullable(value, &b.ID); err != nil {
				return err
			}
		case "author_death_year":
			if err := unmarshalNullable(value, &b.AuthorDeathYear); err != nil {
				return err
			}
		case "content_length":
			if string(value) == "null" {
				continue
			}
			if err := json.Unmarshal(value, &b.ContentLength); err != nil {
				return err
			}
		case string(FieldBookName), string(FieldAuthor), string(FieldSection),
			string(FieldEditor), string(FieldPublisher), string(FieldEdition),
			string(FieldPages), string(FieldPublicationDate):
			var s string
			if err := unmarshalNullable(value, &s); err != nil {
				return err
			}
			b.Set(Field(key), s)
		default:
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				continue
			}
			b.Set(Field(key), s)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func unmarshalNullable(data json.RawMessage, dst *string) error {
	if string(data) == "null" {
		*dst = ""
		return nil
	}
	return json.Unmarshal(data, dst)
}

// BookService represents a service for managing book metadata.
type BookService interface {
	// CreateBook stores a book, replacing any book with the same ID.
	CreateBook(ctx context.Context, book *BookMetadata) error

	// FindBookByID retrieves a book by ID.
	// Returns ENOTFOUND if book does not exist.
	FindBookByID(ctx context.Context, id string) (*BookMetadata, error)

	// FindBooks retrieves books matching the filter.
	FindBooks(ctx context.Context, filter BookFilter) ([]*BookMetadata, error)

	// DeleteBook permanently removes a book.
	// Returns ENOTFOUND if book does not exist.
	DeleteBook(ctx context.Context, id string) error
}

// BookFilter represents a filter for FindBooks.
type BookFilter struct {
	ID      *string `json:"id"`
	Author  *string `json:"author"`
	Section *string `json:"section"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
