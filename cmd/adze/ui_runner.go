package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/redindelible/adze/internal/driver"
	"github.com/redindelible/adze/internal/ui"
)

// uiMode is the value of parse --ui.
type uiMode uint8

const (
	uiModeAuto uiMode = iota // only when stdout is a terminal
	uiModeOn
	uiModeOff
)

var uiModes = map[string]uiMode{"": uiModeAuto, "auto": uiModeAuto, "on": uiModeOn, "off": uiModeOff}

func readUIMode(value string) (uiMode, error) {
	mode, ok := uiModes[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return uiModeAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return mode, nil
}

func shouldUseTUI(mode uiMode, out io.Writer) bool {
	return mode == uiModeOn || (mode == uiModeAuto && isTerminal(out))
}

// runParseWithUI parses on one goroutine while the progress view renders
// on another. Progress events flow over a channel closed when parsing ends.
func runParseWithUI(ctx context.Context, out io.Writer, entry string, opts driver.ProgramOptions) (*driver.ProgramResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	opts.Progress = func(ev driver.ProgressEvent) { events <- ev }

	var res *driver.ProgramResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		var err error
		res, err = driver.ParseProgram(gctx, entry, opts)
		return err
	})
	g.Go(func() error {
		model := ui.NewProgressModel("parsing "+filepath.Base(entry), events, relativeTo(filepath.Dir(entry)))
		program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(gctx))
		_, err := program.Run()
		// дочитываем события, если UI закрылся раньше
		for range events {
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// relativeTo shortens paths below dir for display.
func relativeTo(dir string) func(string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base
	}
	return func(path string) string {
		if rel, err := filepath.Rel(abs, path); err == nil && filepath.IsLocal(rel) {
			return filepath.ToSlash(rel)
		}
		return path
	}
}
