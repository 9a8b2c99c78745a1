package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shamela"
)

// BookImporter loads a batch of books into the index.
type BookImporter interface {
	ImportBooks(ctx context.Context, books []*shamela.BookMetadata) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Books    shamela.BookService
	Importer BookImporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   kong.ConfigFlag `help:"Load flag values from a YAML file" type:"path"`
	LogLevel string          `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"SHAMELA_LOG_LEVEL" help:"Log level (${enum})"`
	DB       string          `name:"db" default:"${db_path}" env:"SHAMELA_DB" type:"path" help:"Index database path"`

	Extract ExtractCmd `cmd:"" help:"Extract books from an export file or directory"`
	Index   IndexCmd   `cmd:"" help:"Load an output directory's metadata into the index"`
	Books   BooksCmd   `cmd:"" help:"List indexed books"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path     string `arg:"" type:"path" help:"Export file, book directory or directory of exports"`
	Output   string `short:"o" required:"" type:"path" help:"Output directory for metadata.json and text files"`
	NoDedupe bool   `name:"no-dedupe" help:"Do not warn about books with identical body text"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir string `arg:"" type:"existingdir" help:"Output directory of a previous extract"`
}

// BooksCmd is the "books" subcommand.
type BooksCmd struct {
	Author  string `help:"Only books by this author"`
	Section string `help:"Only books in this section"`
	Limit   int    `short:"n" default:"0" help:"Maximum number of books to list (0 for all)"`
}
