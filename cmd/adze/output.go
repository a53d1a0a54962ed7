package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/diagfmt"
	"github.com/redindelible/adze/internal/observ"
	"github.com/redindelible/adze/internal/source"
)

// outputSettings collects the persistent flags every command reads.
type outputSettings struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	diagFormat     string
}

func readOutputSettings(cmd *cobra.Command) (outputSettings, error) {
	flags := cmd.Root().PersistentFlags()
	var s outputSettings

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(cmd.ErrOrStderr())
	default:
		return s, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.diagFormat, err = flags.GetString("diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	s.diagFormat = strings.ToLower(s.diagFormat)
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return s, fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json)", s.diagFormat)
	}
	if s.quiet && s.diagFormat == "pretty" {
		s.diagFormat = "short"
	}
	return s, nil
}

// printDiagnostics sorts bag and writes it to stderr in the chosen format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, s outputSettings) error {
	if bag.Len() == 0 && bag.Dropped() == 0 {
		return nil
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch s.diagFormat {
	case "short":
		_, err := io.WriteString(w, diag.FormatShort(bag.Items(), true)+"\n")
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludeNotes: true})
	default:
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			ShowNotes: true,
			Summary:   true,
		})
	}
}

// printTimings writes the phase summary to stderr when --timings is set.
func printTimings(cmd *cobra.Command, timer *observ.Timer, s outputSettings) {
	if !s.timings || timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
