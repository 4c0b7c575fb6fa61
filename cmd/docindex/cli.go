package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Source  docindex.ArtifactSource
	Decoder docindex.ArtifactDecoder
	Fetcher ArtifactFetcher
	Store   docindex.ArtifactStore
	Indexes docindex.IndexService
}

// ArtifactFetcher downloads raw artifact bytes.
type ArtifactFetcher interface {
	// Fetch returns the artifact bytes and the URL they were read from.
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string        `name:"db" env:"DOCINDEX_DB" help:"Catalog database path (default: ~/.docindex/docindex.db)"`
	LogLevel string        `name:"log-level" env:"DOCINDEX_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	Timeout  time.Duration `default:"10s" help:"HTTP fetch timeout"`

	Search SearchCmd `cmd:"" help:"Search artifacts or a catalog index"`
	Import ImportCmd `cmd:"" help:"Import an artifact into the catalog"`
	List   ListCmd   `cmd:"" help:"List catalog indexes"`
	Pages  PagesCmd  `cmd:"" help:"List the pages of a catalog index"`
	Delete DeleteCmd `cmd:"" help:"Delete a catalog index"`
	Fetch  FetchCmd  `cmd:"" help:"Download an artifact to a local file"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string   `arg:"" help:"Text to search for"`
	Locations   []string `arg:"" optional:"" help:"Artifact files or URLs"`
	Index       string   `short:"i" help:"Search a catalog index instead of locations"`
	Engine      string   `short:"e" default:"scan" enum:"scan,bloom,bleve" help:"Search engine (scan, bloom, bleve)"`
	Limit       int      `short:"n" default:"20" help:"Maximum number of results (0 for all)"`
	Page        []string `short:"p" help:"Only show results from this page (repeatable)"`
	Category    string   `help:"Only show results of this category (page, section)"`
	Snippet     int      `default:"80" help:"Snippet width in characters (0 disables)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent artifact loads"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name     string `arg:"" help:"Index name"`
	Location string `arg:"" help:"Artifact file or URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Name string `arg:"" help:"Index name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Index name"`
	Force bool   `help:"Confirm deletion"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"Artifact or documentation page URL"`
	Path string `arg:"" help:"Output file path"`
}
