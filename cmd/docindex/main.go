package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/gjson"
	"github.com/fwojciec/docindex/goquery"
	dochttp "github.com/fwojciec/docindex/http"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
)

// requestsPerSecond limits artifact requests per host.
const requestsPerSecond = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); overridden by --db.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	IndexService docindex.IndexService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Search documentation search-index artifacts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	decoder := gjson.NewDecoder()
	httpSource := dochttp.NewSource(decoder,
		dochttp.WithTimeout(cli.Timeout),
		dochttp.WithDiscoverer(docslog.NewLoggingDiscoverer(goquery.NewDiscoverer(), logger)),
		dochttp.WithLimiter(dochttp.NewHostLimiter(requestsPerSecond)),
		dochttp.WithLogFunc(func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}),
	)
	deps.Decoder = decoder
	deps.Fetcher = httpSource
	deps.Source = docslog.NewLoggingSource(&Router{
		HTTP: httpSource,
		File: fs.NewSource(decoder),
	}, logger)

	if cmd == "fetch" {
		deps.Store = fs.NewCache(cli.Fetch.Path)
	}

	if needsCatalog(cmd, cli) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		if err := m.openDB(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCINDEX_DB to use a different database path\n")
			return err
		}
		defer m.Close()

		m.IndexService = sqlite.NewIndexService(m.DB)
		deps.Indexes = m.IndexService
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB() error {
	if m.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// needsCatalog reports whether cmd reads or writes the catalog database.
func needsCatalog(cmd string, cli *CLI) bool {
	switch cmd {
	case "import", "list", "pages", "delete":
		return true
	case "search":
		return cli.Search.Index != ""
	}
	return false
}

// newLogger returns a slog logger backed by a charmbracelet/log handler
// writing to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid log level %q", level)
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docindex.db"
	}
	return filepath.Join(home, ".docindex", "docindex.db")
}
