package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/shamela"
)

// Run executes the books command.
func (c *BooksCmd) Run(deps *Dependencies) error {
	filter := shamela.BookFilter{Limit: c.Limit}
	if c.Author != "" {
		filter.Author = &c.Author
	}
	if c.Section != "" {
		filter.Section = &c.Section
	}

	books, err := deps.Books.FindBooks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shamela.ErrorMessage(err))
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No books found. Use 'shamela index' to load an output directory.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.BookName, b.Author, b.AuthorDeathYear, b.Section)
	}
	return w.Flush()
}
