package goquery_test

import (
	"testing"

	"github.com/fwojciec/shamela"
	"github.com/fwojciec/shamela/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataPage = `<!DOCTYPE html>
<html dir="rtl">
<head><meta charset="utf-8"><title>كتاب التوحيد</title></head>
<body>
<div class="PageText">
<div class="PageHead"><span class="PartName">كتاب التوحيد</span><span class="PageNumber">(ص: 1)</span><hr/></div>
<span class="title">الكتاب:</span> كتاب التوحيد<br>
<span class="title">المؤلف:</span> شيخ الإسلام <b>ابن تيمية</b> (ت 728هـ)<br>
<span class="title">القسم:</span> العقيدة<br>
<span class="title">تحقيق:</span> محمد بن عبد الله<br>
<span class="title">الناشر:</span> دار المعرفة<br>
<span class="title">الطبعة:</span> الأولى<br>
<span class="title">عدد الصفحات:</span> 120 صفحة<br>
<span class="title">تاريخ النشر:</span> 1420 هـ<br>
<span class="title">ترقيم:</span> موافق للمطبوع<br>
</div>
<div class="PageText"><p>متن الكتاب</p></div>
</body>
</html>`

func fixedID(id string) shamela.IDGenerator {
	return func() string { return id }
}

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("extracts all labelled fields", func(t *testing.T) {
		t.Parallel()

		e := &goquery.MetadataExtractor{NewID: fixedID("book-1")}

		book, err := e.ExtractMetadata(metadataPage)

		require.NoError(t, err)
		assert.Equal(t, &shamela.BookMetadata{
			ID:              "book-1",
			BookName:        "كتاب التوحيد",
			Author:          "شيخ الإسلام ابن تيمية",
			AuthorDeathYear: "728",
			Section:         "العقيدة",
			Editor:          "محمد بن عبد الله",
			Publisher:       "دار المعرفة",
			Edition:         "الأولى",
			Pages:           "120",
			PublicationDate: "1420 هـ",
			Extra:           map[string]string{"ترقيم:": "موافق للمطبوع"},
		}, book)
	})

	t.Run("takes book name from the text right after the label", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">الكتاب:</span>كتاب التوحيد</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "كتاب التوحيد", book.BookName)
	})

	t.Run("extracts death year and strips parenthetical from author", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">المؤلف:</span> ابن تيمية (ت 728هـ)<p>بعده</p></div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "ابن تيمية", book.Author)
		assert.Equal(t, "728", book.AuthorDeathYear)
	})

	t.Run("takes the first number in author text even outside the death note", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">المؤلف:</span> ابن حجر 2 (ت 852هـ)</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "2", book.AuthorDeathYear)
		assert.Equal(t, "ابن حجر 2", book.Author)
	})

	t.Run("normalizes arabic-indic death year", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">المؤلف:</span> ابن تيمية (ت ٧٢٨هـ)</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "728", book.AuthorDeathYear)
		assert.Equal(t, "ابن تيمية", book.Author)
	})

	t.Run("author stops at the next label", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">المؤلف:</span> البخاري <i>الإمام</i><span class="title">القسم:</span> الحديث</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "البخاري الإمام", book.Author)
		assert.Empty(t, book.AuthorDeathYear)
		assert.Equal(t, "الحديث", book.Section)
	})

	t.Run("author stops at the next paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">المؤلف:</span> مسلم بن الحجاج (ت 261هـ)<p>وصف الكتاب</p></div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "مسلم بن الحجاج", book.Author)
		assert.Equal(t, "261", book.AuthorDeathYear)
	})

	t.Run("keeps value of an empty label under the empty key", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title"> </span> ملحق<br><span class="title">القسم:</span> الفقه</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"": "ملحق"}, book.Extra)
		assert.Equal(t, "الفقه", book.Section)
	})

	t.Run("keeps raw page count when it has no digits", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">عدد الصفحات:</span> غير مرقم</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "غير مرقم", book.Pages)
	})

	t.Run("falls back to the first title element for book name", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><div class="title">رسالة في الصلاة</div><p>نص</p></div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "رسالة في الصلاة", book.BookName)
	})

	t.Run("leaves missing required fields empty without error", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">الناشر:</span> دار المعرفة</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Empty(t, book.Author)
		assert.Empty(t, book.Section)
		assert.Equal(t, "الناشر:", book.BookName, "book name falls back to the first title element")
		assert.Equal(t, "دار المعرفة", book.Publisher)
	})

	t.Run("only reads the first page", func(t *testing.T) {
		t.Parallel()

		html := `<div class="PageText"><span class="title">الكتاب:</span> الأول</div>
<div class="PageText"><span class="title">القسم:</span> لا يقرأ</div>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "الأول", book.BookName)
		assert.Empty(t, book.Section)
	})

	t.Run("generates a new ID on every call", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewMetadataExtractor()

		first, err := e.ExtractMetadata(metadataPage)
		require.NoError(t, err)
		second, err := e.ExtractMetadata(metadataPage)
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)

		second.ID = first.ID
		assert.Equal(t, first, second)
	})

	t.Run("returns EMETADATA when there is no metadata page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>لا توجد صفحات</p></body></html>`

		book, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.Error(t, err)
		assert.Nil(t, book)
		assert.Equal(t, shamela.EMETADATA, shamela.ErrorCode(err))
	})
}
