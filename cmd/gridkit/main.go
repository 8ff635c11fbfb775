// Command gridkit runs an interactive data grid in the terminal: drag
// to select rectangles, drag headers or the row gutter for ranges,
// double-click to edit a cell, drag header borders to resize columns,
// and copy the selection as TSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/odvcencio/gridkit/pkg/clipboard"
	"github.com/odvcencio/gridkit/pkg/config"
	"github.com/odvcencio/gridkit/pkg/datasource"
	"github.com/odvcencio/gridkit/pkg/grid"
	"github.com/odvcencio/gridkit/pkg/logging"
	tcellbackend "github.com/odvcencio/gridkit/pkg/ui/backend/tcell"
	"github.com/odvcencio/gridkit/pkg/ui/runtime"
	"github.com/odvcencio/gridkit/pkg/ui/terminal"
	"github.com/odvcencio/gridkit/pkg/ui/theme"
	"github.com/odvcencio/gridkit/pkg/ui/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridkit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to config.yaml (default: ~/.gridkit then ./.gridkit)")
		xlsxPath    = flag.String("xlsx", "", "load the first sheet of an xlsx workbook")
		sqlitePath  = flag.String("sqlite", "", "open a sqlite database as the data source")
		sqliteTable = flag.String("table", "", "table to load from the sqlite database")
		themeName   = flag.String("theme", "", "theme override: dark or light")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *xlsxPath != "" {
		cfg.Data.XLSXPath = *xlsxPath
		cfg.Data.SQLitePath = ""
	}
	if *sqlitePath != "" {
		cfg.Data.SQLitePath = *sqlitePath
		cfg.Data.XLSXPath = ""
	}
	if *sqliteTable != "" {
		cfg.Data.SQLiteTable = *sqliteTable
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, uuid.NewString())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()
	switch cfg.Logging.Level {
	case "debug":
		logger.SetMinLevel(logging.LevelDebug)
	case "warn":
		logger.SetMinLevel(logging.LevelWarn)
	case "error":
		logger.SetMinLevel(logging.LevelError)
	}

	source, persist, cleanup, err := openSource(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	backend, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	status := widgets.NewStatusBar()
	var app *runtime.App

	g := grid.New(grid.Options{
		Source:             source,
		Clipboard:          clipboard.NewSystem(),
		Logger:             logger,
		Persist:            persist,
		MinColumnWidth:     cfg.Grid.MinColumnWidth,
		DefaultColumnWidth: cfg.Grid.DefaultColumnWidth,
		GutterWidth:        cfg.Grid.RowNumberWidth,
		AutoCopy:           cfg.Clipboard.AutoCopy,
		AutoCopyDelay:      time.Duration(cfg.Clipboard.AutoCopyDelayMS) * time.Millisecond,
		Invalidate:         func() { app.Invalidate() },
	})

	flashCopied := g.Copier().OnCopied
	g.Copier().OnCopied = func(set grid.CellSet) {
		flashCopied(set)
		app.Post(runtime.FuncMsg{Fn: func() {
			status.SetRight(fmt.Sprintf("copied %d cells", set.Len()))
		}})
	}

	root := runtime.VBox(
		runtime.Expanded(g),
		runtime.Sized(status, 1),
	)

	app = runtime.NewApp(runtime.AppConfig{
		Backend:  backend,
		Root:     root,
		Theme:    theme.ByName(cfg.UI.Theme),
		TickRate: 250 * time.Millisecond,
		Update: func(a *runtime.App, msg runtime.Message) bool {
			if k, ok := msg.(runtime.KeyMsg); ok && k.Key == terminal.KeyCtrlQ {
				a.Quit()
				return false
			}
			return runtime.DefaultUpdate(a, msg)
		},
		CommandHandler: func(cmd runtime.Command) bool {
			switch c := cmd.(type) {
			case runtime.SelectionChanged:
				if c.Cells == 0 {
					status.SetLeft("no selection")
				} else {
					status.SetLeft(fmt.Sprintf("%d cells (%d×%d)", c.Cells, c.Rows, c.Cols))
				}
				return true
			case runtime.CellEdited:
				status.SetRight(fmt.Sprintf("saved %s", c.ColumnID))
				return true
			case runtime.ColumnResized:
				status.SetRight(fmt.Sprintf("%s → %d", c.ColumnID, c.Width))
				return true
			}
			return false
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// openSource picks the data source from config: sqlite, xlsx, or the
// built-in sample. The returned persist callback writes committed edits
// back into the source.
func openSource(cfg *config.Config, logger *logging.Logger) (grid.Source, grid.PersistFunc, func(), error) {
	switch {
	case cfg.Data.SQLitePath != "":
		table := cfg.Data.SQLiteTable
		if table == "" {
			return nil, nil, nil, fmt.Errorf("a sqlite source needs -table (or data.sqlite_table)")
		}
		t, err := datasource.OpenSQLite(cfg.Data.SQLitePath, table, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t.SetValue, func() { t.Close() }, nil

	case cfg.Data.XLSXPath != "":
		t, err := datasource.LoadXLSX(cfg.Data.XLSXPath, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t.SetValue, func() {}, nil

	default:
		t := datasource.Sample()
		return t, t.SetValue, func() {}, nil
	}
}
