package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/shamela"
	"github.com/fwojciec/shamela/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tawhid() *shamela.BookMetadata {
	return &shamela.BookMetadata{
		ID:              "b-1",
		BookName:        "كتاب التوحيد",
		Author:          "ابن تيمية",
		AuthorDeathYear: "728",
		Section:         "العقيدة",
		Publisher:       "دار المعرفة",
		Pages:           "120",
		ContentLength:   5000,
		Extra:           map[string]string{"ترقيم:": "موافق للمطبوع"},
	}
}

func TestBookService_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("stores all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBook(ctx, tawhid()))

		got, err := svc.FindBookByID(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, tawhid(), got)
	})

	t.Run("replaces book with same ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBook(ctx, tawhid()))
		updated := tawhid()
		updated.Pages = "240"
		updated.Extra = nil
		require.NoError(t, svc.CreateBook(ctx, updated))

		got, err := svc.FindBookByID(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "240", got.Pages)
		assert.Nil(t, got.Extra)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("returns error for book without ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)

		err := svc.CreateBook(context.Background(), &shamela.BookMetadata{})

		assert.Equal(t, shamela.EINVALID, shamela.ErrorCode(err))
	})
}

func TestBookService_ImportBooks(t *testing.T) {
	t.Parallel()

	t.Run("imports all books", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		err := svc.ImportBooks(ctx, []*shamela.BookMetadata{{ID: "a"}, {ID: "b"}})
		require.NoError(t, err)

		books, err := svc.FindBooks(ctx, shamela.BookFilter{})
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("writes nothing when a book is invalid", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		err := svc.ImportBooks(ctx, []*shamela.BookMetadata{{ID: "a"}, {}})
		assert.Equal(t, shamela.EINVALID, shamela.ErrorCode(err))

		books, err := svc.FindBooks(ctx, shamela.BookFilter{})
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookService_FindBookByID(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)

		_, err := svc.FindBookByID(context.Background(), "missing")

		assert.Equal(t, shamela.ENOTFOUND, shamela.ErrorCode(err))
	})
}

func TestBookService_FindBooks(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *sqlite.BookService {
		t.Helper()
		svc := sqlite.NewBookService(setupTestDB(t))
		require.NoError(t, svc.ImportBooks(context.Background(), []*shamela.BookMetadata{
			{ID: "c", Author: "ابن تيمية", Section: "العقيدة"},
			{ID: "a", Author: "ابن تيمية", Section: "الفقه"},
			{ID: "b", Author: "ابن حجر", Section: "العقيدة"},
		}))
		return svc
	}

	ids := func(books []*shamela.BookMetadata) []string {
		var out []string
		for _, b := range books {
			out = append(out, b.ID)
		}
		return out
	}

	t.Run("orders by ID", func(t *testing.T) {
		t.Parallel()

		books, err := setup(t).FindBooks(context.Background(), shamela.BookFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids(books))
	})

	t.Run("filters by author", func(t *testing.T) {
		t.Parallel()

		author := "ابن تيمية"
		books, err := setup(t).FindBooks(context.Background(), shamela.BookFilter{Author: &author})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, ids(books))
	})

	t.Run("filters by section and author", func(t *testing.T) {
		t.Parallel()

		author := "ابن تيمية"
		section := "العقيدة"
		books, err := setup(t).FindBooks(context.Background(), shamela.BookFilter{Author: &author, Section: &section})

		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, ids(books))
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		books, err := setup(t).FindBooks(context.Background(), shamela.BookFilter{Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(books))
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		books, err := setup(t).FindBooks(context.Background(), shamela.BookFilter{Offset: 1})

		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, ids(books))
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("removes book", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()
		require.NoError(t, svc.CreateBook(ctx, tawhid()))

		require.NoError(t, svc.DeleteBook(ctx, "b-1"))

		_, err := svc.FindBookByID(ctx, "b-1")
		assert.Equal(t, shamela.ENOTFOUND, shamela.ErrorCode(err))
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)

		err := svc.DeleteBook(context.Background(), "missing")

		assert.Equal(t, shamela.ENOTFOUND, shamela.ErrorCode(err))
	})
}
