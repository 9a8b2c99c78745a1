// Package process walks Shamela exports on disk and turns every book it
// finds into a body text file and a metadata entry.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/shamela"
	"github.com/fwojciec/shamela/bloom"
	"github.com/fwojciec/shamela/fs"
)

// Duplicate detection sizing for a single run.
const (
	// ExpectedBooks is the expected number of books for Bloom filter sizing.
	ExpectedBooks = 100000
	// FalsePositiveRate is the acceptable false positive rate for duplicate warnings.
	FalsePositiveRate = 0.001
)

// Processor extracts books from files and directories.
//
// Processing is sequential and depth-first. Every book is written to Texts
// and Books before the next one is read.
type Processor struct {
	Reader   shamela.PageReader
	Metadata shamela.MetadataExtractor
	Content  shamela.ContentExtractor
	Books    shamela.BookService
	Texts    shamela.TextWriter
	Logger   *slog.Logger

	// Seen is optional. When set, books whose body text was very likely
	// produced earlier in the run are reported.
	Seen *bloom.Filter

	result Result
}

// Result holds the outcome of the books processed so far.
type Result struct {
	Saved  int
	Failed int
	Chars  int
}

// Result returns the counts accumulated across calls to Process.
func (p *Processor) Result() Result {
	return p.result
}

// Process extracts every book reachable from path and reports whether all
// of them succeeded. Failures are logged and never stop the traversal.
func (p *Processor) Process(ctx context.Context, path string) bool {
	switch fs.Classify(path) {
	case shamela.PathSingleFile:
		return p.processUnit(ctx, path, []string{path}, false)
	case shamela.PathMultiFileBook:
		return p.processBook(ctx, path)
	case shamela.PathContainer:
		return p.processContainer(ctx, path)
	default:
		p.logger().Warn("unsupported path", "path", path)
		return false
	}
}

func (p *Processor) processBook(ctx context.Context, dir string) bool {
	pages, ignored, err := fs.BookPages(dir)
	for _, name := range ignored {
		p.logger().Warn("ignoring non-numeric page file", "path", dir, "file", name)
	}
	if err == nil && len(pages) == 0 {
		err = shamela.Errorf(shamela.EINVALID, "no page files")
	}
	if err != nil {
		p.fail(dir, err)
		return false
	}
	return p.processUnit(ctx, dir, pages, true)
}

func (p *Processor) processContainer(ctx context.Context, dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.fail(dir, err)
		return false
	}

	ok := true
	for _, e := range entries {
		child := filepath.Join(dir, e.Name())
		if !e.IsDir() && !strings.HasSuffix(e.Name(), shamela.PageExt) {
			p.logger().Debug("skipping file", "path", child)
			continue
		}
		if !p.Process(ctx, child) {
			ok = false
		}
	}
	return ok
}

func (p *Processor) processUnit(ctx context.Context, path string, files []string, multi bool) bool {
	book, err := p.extract(ctx, path, files, multi)
	if err != nil {
		p.fail(path, err)
		return false
	}

	p.result.Saved++
	p.result.Chars += book.ContentLength
	p.logger().Info("extracted book",
		"path", path,
		"book_id", book.ID,
		"files", len(files),
		"chars", book.ContentLength,
	)
	return true
}

func (p *Processor) extract(ctx context.Context, path string, files []string, multi bool) (*shamela.BookMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages := make([]string, 0, len(files))
	for _, f := range files {
		html, err := p.Reader.ReadPage(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(f), err)
		}
		pages = append(pages, html)
	}

	book, err := p.Metadata.ExtractMetadata(pages[0])
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %w", err)
	}
	if missing := book.MissingRequired(); len(missing) > 0 {
		p.logger().Warn("missing required metadata",
			"path", path,
			"book_id", book.ID,
			"fields", joinFields(missing),
		)
	}

	var text string
	if multi {
		text, err = p.Content.ExtractBook(pages)
	} else {
		text, err = p.Content.ExtractContent(pages[0], true)
	}
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}
	book.ContentLength = utf8.RuneCountInString(text)

	if p.Seen != nil && text != "" && p.Seen.Seen(text) {
		p.logger().Warn("duplicate body text", "path", path, "book_id", book.ID)
	}

	if err := p.Texts.WriteText(ctx, book.ID, text); err != nil {
		return nil, fmt.Errorf("write text: %w", err)
	}
	if err := p.Books.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("store metadata: %w", err)
	}
	return book, nil
}

func (p *Processor) fail(path string, err error) {
	p.result.Failed++
	p.logger().Error("failed to process", "path", path, "err", err)
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func joinFields(fields []shamela.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}
