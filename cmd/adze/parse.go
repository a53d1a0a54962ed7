package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diagfmt"
	"github.com/redindelible/adze/internal/driver"
	"github.com/redindelible/adze/internal/observ"
	"github.com/redindelible/adze/internal/project"
	"github.com/redindelible/adze/internal/source"
)

const noManifestMessage = "no adze.toml found\nplease specify the entry file explicitly, e.g.:\n  adze parse path/to/main.adze"

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] [file.adze|-]",
		Short: "Parse an adze program and print its syntax tree",
		Long: `Parse reads the entry file, follows its imports and prints the syntax tree
of every file. Without an argument the entry comes from adze.toml.
With --single only the given file is parsed and the recovered tree is
printed even when it has errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|yaml|msgpack)")
	cmd.Flags().String("ui", "auto", "show progress UI (auto|on|off)")
	cmd.Flags().Bool("single", false, "parse only the given file, ignoring imports")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	writeAST, err := astWriter(format)
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	single, err := cmd.Flags().GetBool("single")
	if err != nil {
		return fmt.Errorf("failed to get single flag: %w", err)
	}
	settings, err := readOutputSettings(cmd)
	if err != nil {
		return err
	}

	entry, err := resolveEntry(cmd, args, &settings)
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

	if single || entry == "-" {
		return parseSingle(cmd, entry, writeAST, settings)
	}

	timer := observ.NewTimer()
	opts := driver.ProgramOptions{
		MaxDiagnostics: settings.maxDiagnostics,
		Timer:          timer,
	}
	var res *driver.ProgramResult
	if shouldUseTUI(mode, cmd.OutOrStdout()) {
		res, err = runParseWithUI(cmd.Context(), cmd.OutOrStdout(), entry, opts)
	} else {
		res, err = driver.ParseProgram(cmd.Context(), entry, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err = printDiagnostics(cmd, res.Bag, res.FileSet, settings); err != nil {
		return err
	}
	printTimings(cmd, timer, settings)
	if res.Program == nil {
		return errDiagnostics
	}
	return writeAST(cmd.OutOrStdout(), res.Program, res.FileSet)
}

func parseSingle(cmd *cobra.Command, entry string, writeAST astWriterFunc, settings outputSettings) error {
	var (
		res *driver.ParseResult
		err error
	)
	if entry == "-" {
		fs, file, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		res, err = driver.ParseSource(fs, file, settings.maxDiagnostics)
	} else {
		res, err = driver.Parse(entry, settings.maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err = printDiagnostics(cmd, res.Bag, res.FileSet, settings); err != nil {
		return err
	}
	if res.AST != nil {
		if err = writeAST(cmd.OutOrStdout(), res.AST, res.FileSet); err != nil {
			return err
		}
	}
	if res.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

// resolveEntry returns the file named on the command line or, without one,
// the manifest entry. The manifest's max_diagnostics applies unless the flag
// was given explicitly.
func resolveEntry(cmd *cobra.Command, args []string, settings *outputSettings) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	manifest, err := project.LoadManifest(wd)
	if errors.Is(err, project.ErrNoManifest) {
		return "", errors.New(noManifestMessage)
	}
	if err != nil {
		return "", err
	}
	if limit := manifest.Config.Build.MaxDiagnostics; limit > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		settings.maxDiagnostics = limit
	}
	return manifest.Entry()
}

type astWriterFunc func(w io.Writer, n ast.Node, fs *source.FileSet) error

func astWriter(format string) (astWriterFunc, error) {
	switch format {
	case "tree":
		return diagfmt.FormatASTPretty, nil
	case "json":
		return diagfmt.FormatASTJSON, nil
	case "yaml":
		return diagfmt.FormatASTYAML, nil
	case "msgpack":
		return diagfmt.FormatASTMsgpack, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
