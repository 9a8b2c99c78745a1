package main

import (
	"fmt"

	"github.com/fwojciec/shamela"
	"github.com/fwojciec/shamela/bloom"
	"github.com/fwojciec/shamela/fs"
	"github.com/fwojciec/shamela/goquery"
	"github.com/fwojciec/shamela/process"
	shamelaslog "github.com/fwojciec/shamela/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	store := fs.NewMetadataStore(c.Output)
	if err := store.Open(); err != nil {
		return fmt.Errorf("failed to open output directory %q: %w", c.Output, err)
	}

	p := &process.Processor{
		Reader:   shamelaslog.NewLoggingPageReader(fs.NewPageReader(), deps.Logger),
		Metadata: goquery.NewMetadataExtractor(),
		Content:  goquery.NewContentExtractor(),
		Books:    shamelaslog.NewLoggingBookService(store, deps.Logger),
		Texts:    shamelaslog.NewLoggingTextWriter(fs.NewTextWriter(c.Output), deps.Logger),
		Logger:   deps.Logger,
	}
	if !c.NoDedupe {
		p.Seen = bloom.NewFilter(process.ExpectedBooks, process.FalsePositiveRate)
	}

	ok := p.Process(deps.Ctx, c.Path)

	result := p.Result()
	fmt.Fprintf(deps.Stdout, "Extracted %d books (%d characters) into %s\n", result.Saved, result.Chars, c.Output)
	if p.Seen != nil {
		fmt.Fprintf(deps.Stdout, "Distinct bodies: about %d\n", p.Seen.EstimatedCount())
	}
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: %d documents failed, see log for details\n", result.Failed)
		return shamela.Errorf(shamela.EINVALID, "extraction of %q incomplete", c.Path)
	}
	return nil
}
