package shamela_test

import (
	"testing"

	"github.com/fwojciec/shamela"
	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses three or more newlines",
			in:   "first\n\n\n\nsecond\n\n\nthird",
			want: "first\n\nsecond\n\nthird",
		},
		{
			name: "keeps single blank lines",
			in:   "first\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "replaces ellipsis glyph",
			in:   "قال… ثم",
			want: "قال... ثم",
		},
		{
			name: "removes control characters",
			in:   "a\x00b\x08c\x0bd\x1fe\x7ff\u0085g\u009fh",
			want: "abcdefgh",
		},
		{
			name: "keeps tabs and carriage returns",
			in:   "a\tb\r\nc",
			want: "a\tb\r\nc",
		},
		{
			name: "trims surrounding whitespace",
			in:   "\n\n  متن  \n\n",
			want: "متن",
		},
		{
			name: "control characters between newlines do not leave long runs",
			in:   "a\n\n\x01\nb",
			want: "a\n\nb",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, shamela.CleanText(tt.in))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"\n\n\n\nx\n\n\n",
		"a\n\n\x01\n\x02\nb",
		"…\n\n\n…",
		"\x00\n\x00\n\x00\n",
		"## باب\n\n\n\nنص\r\n\r\n\r\n",
	}

	for _, in := range inputs {
		once := shamela.CleanText(in)
		assert.Equal(t, once, shamela.CleanText(once), "input %q", in)
	}
}

func TestFirstNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "ascii digits", in: "ابن تيمية (ت 728هـ)", want: "728", wantOK: true},
		{name: "first run wins", in: "2 ثم 852", want: "2", wantOK: true},
		{name: "arabic-indic digits", in: "(ت ٧٢٨هـ)", want: "728", wantOK: true},
		{name: "extended arabic-indic digits", in: "۱۲۳ صفحة", want: "123", wantOK: true},
		{name: "no digits", in: "غير مرقم", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := shamela.FirstNumber(tt.in)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripParentheticals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ابن تيمية", shamela.StripParentheticals("ابن تيمية (ت 728هـ)"))
	assert.Equal(t, "أحمد  محمد", shamela.StripParentheticals("أحمد (الأول) محمد (ت 241)"))
	assert.Equal(t, "بلا أقواس", shamela.StripParentheticals(" بلا أقواس "))
}

func TestPathKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "single_file", shamela.PathSingleFile.String())
	assert.Equal(t, "multifile_book", shamela.PathMultiFileBook.String())
	assert.Equal(t, "container_dir", shamela.PathContainer.String())
	assert.Equal(t, "unsupported", shamela.PathUnsupported.String())
}
