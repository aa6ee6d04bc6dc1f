package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"panekit/internal/config"
	"panekit/internal/layout"
	"panekit/internal/pty"
	"panekit/internal/telemetry"
	"panekit/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds the parsed CLI configuration.
type options struct {
	layout   string
	debug    string
	allMouse bool
	verbose  bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.layout, "layout", "", "YAML layout file (default: built-in demo)")
	flag.StringVar(&opts.debug, "debug", "", "write logs to this file")
	flag.BoolVar(&opts.allMouse, "all-motion", false, "report mouse motion without a button held")
	flag.BoolVar(&opts.verbose, "verbose", false, "log the loaded layout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panekit [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Panekit shows a layout of resizable panes in the terminal.\n")
		fmt.Fprintf(os.Stderr, "Drag a splitter to resize the panes either side of it.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func loadDocument(path string) (*config.Document, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(opts options) error {
	if opts.debug != "" {
		f, err := tea.LogToFile(opts.debug, "panekit")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	doc, err := loadDocument(opts.layout)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("layout: %+v", doc.Layout)
	}

	ctx := context.Background()
	exp, err := telemetry.NewExporter(ctx)
	if err != nil {
		log.Printf("telemetry: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := exp.Shutdown(sctx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	app, err := ui.Build(doc, ui.Deps{
		Runner: &pty.CreackPTY{},
		Cursor: ui.NewTerminalCursor(os.Stdout),
		OnDragEnd: func(st layout.DragStats) {
			exp.RecordDrag(ctx, st)
		},
	})
	if err != nil {
		return err
	}
	defer app.Close()

	mouse := tea.WithMouseCellMotion()
	if opts.allMouse {
		mouse = tea.WithMouseAllMotion()
	}
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), mouse, tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return err
	}
	return app.Err()
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "panekit: %v\n", err)
		os.Exit(1)
	}
}
