package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/redindelible/adze/internal/diagfmt"
	"github.com/redindelible/adze/internal/driver"
	"github.com/redindelible/adze/internal/observ"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/trace"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.adze|->",
		Short: "Tokenize an adze source file",
		Long:  `Tokenize breaks an adze source file into tokens. Use - to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	settings, err := readOutputSettings(cmd)
	if err != nil {
		return err
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err != nil) }()
	_, span := trace.Start(cmd.Context(), trace.ScopeDriver, "tokenize")
	defer span.End(args[0])

	timer := observ.NewTimer()
	stop := timer.Track("lex")
	var result *driver.TokenizeResult
	if args[0] == "-" {
		fs, file, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		result = driver.TokenizeFile(fs, file, settings.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(args[0], settings.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}
	stop(fmt.Sprintf("%d tokens", len(result.Tokens)))

	if err = printDiagnostics(cmd, result.Bag, result.FileSet, settings); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.Tokens, result.FileSet)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens)
	}
	if err != nil {
		return err
	}

	printTimings(cmd, timer, settings)
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

// readStdin loads standard input as a virtual file named <stdin>.
func readStdin(cmd *cobra.Command) (*source.FileSet, *source.File, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	fs := source.NewFileSet()
	return fs, fs.AddVirtual("<stdin>", string(data)), nil
}
