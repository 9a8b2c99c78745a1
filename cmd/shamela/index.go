package main

import (
	"fmt"

	"github.com/fwojciec/shamela"
	"github.com/fwojciec/shamela/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	store := fs.NewMetadataStore(c.Dir)
	if err := store.Open(); err != nil {
		return fmt.Errorf("failed to open %q: %w", c.Dir, err)
	}

	books, err := store.FindBooks(deps.Ctx, shamela.BookFilter{})
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no books found in %s\n", store.Path())
		return shamela.Errorf(shamela.ENOTFOUND, "no books in %q", c.Dir)
	}

	if err := deps.Importer.ImportBooks(deps.Ctx, books); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shamela.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d books from %s\n", len(books), c.Dir)
	return nil
}
