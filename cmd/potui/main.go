package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	isatty "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glabrego/potui/internal/app"
	"github.com/glabrego/potui/internal/catalog"
	"github.com/glabrego/potui/internal/config"
	"github.com/glabrego/potui/internal/memory"
	"github.com/glabrego/potui/internal/session"
	"github.com/glabrego/potui/internal/tui"
)

var (
	flagConfig  string
	flagCreate  bool
	flagFromPOT string
)

func main() {
	root := &cobra.Command{
		Use:   "potui [FILE]",
		Short: "Terminal editor for gettext PO catalogs",
		Long: `potui opens a gettext PO catalog in an interactive terminal editor.

Without flags the FILE must exist. --create starts a new catalog at
FILE, and --from-pot POT instantiates FILE from a POT template.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/potui/config.yaml)")
	root.Flags().BoolVar(&flagCreate, "create", false, "create a new catalog at FILE")
	root.Flags().StringVar(&flagFromPOT, "from-pot", "", "instantiate FILE from a POT template")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "potui: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openMemory(cfg.MemoryPath, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	// The interface holds a typed nil otherwise.
	var mem app.TranslationMemory
	if store != nil {
		mem = store
	}
	service := app.NewService(mem, cfg.Language, log)

	c, err := openCatalog(service, args)
	if err != nil {
		return err
	}

	fold := session.UnicodeFold()
	if cfg.SearchFold == "ascii" {
		fold = session.ASCIIFold()
	}
	s := session.New(c, session.Options{PageSize: cfg.PageSize, Fold: fold})

	model := tui.NewModel(s, service)
	program := tea.NewProgram(model, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.FatalErr() != nil {
		return fmt.Errorf("save on quit: %w", m.FatalErr())
	}
	return nil
}

// openCatalog resolves the FILE argument against the --create and
// --from-pot modes.
func openCatalog(service *app.Service, args []string) (*catalog.Catalog, error) {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	switch {
	case flagFromPOT != "":
		if path == "" {
			return nil, fmt.Errorf("--from-pot requires a target FILE argument")
		}
		return service.InstantiateTemplate(flagFromPOT, path)
	case flagCreate:
		if path == "" {
			return nil, fmt.Errorf("--create requires a FILE argument")
		}
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("refusing to overwrite existing file %s", path)
		}
		return service.CreateCatalog(path), nil
	case path == "":
		return nil, fmt.Errorf("missing FILE argument (or use --create)")
	default:
		return service.OpenCatalog(path)
	}
}

// newLogger writes JSON log lines to the configured file. With no
// log_file set, logging is disabled: stderr belongs to the terminal UI
// while it runs.
func newLogger(logFile string) (zerolog.Logger, func(), error) {
	zerolog.TimeFieldFormat = time.RFC3339

	if logFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

// openMemory opens and initializes the translation-memory database. A
// broken memory is reported but never blocks editing.
func openMemory(path string, log zerolog.Logger) (*memory.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create memory directory: %w", err)
	}
	store, err := memory.NewStore(path)
	if err != nil {
		warnMemory(log, path, err)
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		store.Close()
		warnMemory(log, path, err)
		return nil, nil
	}
	return store, nil
}

func warnMemory(log zerolog.Logger, path string, err error) {
	log.Warn().Err(err).Str("path", path).Msg("translation memory unavailable")
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "warning: translation memory unavailable (%v), suggestions disabled\n", err)
	}
}
