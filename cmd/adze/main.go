package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redindelible/adze/internal/version"
)

// errDiagnostics is returned by commands whose input produced error
// diagnostics. They are already printed, so main only sets the exit code.
var errDiagnostics = errors.New("errors were reported")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adze",
		Short:         "adze language front end",
		Long:          `adze lexes and parses adze source files and reports syntax diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "print diagnostics one per line, without source context")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to keep (0 = unlimited)")
	flags.String("diagnostics", "pretty", "diagnostics format (pretty|short|json)")
	flags.String("trace", "", "write a trace to this file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|driver|phase|detail)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring trace buffer")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")

	return rootCmd
}

// main builds the command tree and runs it. Any error exits with status 1;
// diagnostics have been printed by the command itself.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "adze: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли писатель терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
