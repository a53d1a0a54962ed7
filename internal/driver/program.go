package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/observ"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/trace"
)

// FileExt is the extension of adze source files.
const FileExt = ".adze"

// ProgramOptions configures ParseProgram.
type ProgramOptions struct {
	MaxDiagnostics int           // bag capacity, <= 0 for unlimited
	BaseDir        string        // for display paths; defaults to the entry's directory
	Progress       ProgressSink  // optional
	Timer          *observ.Timer // optional, receives load/lex/parse phases
}

// ProgramResult is all-or-nothing: Program is nil whenever Bag has errors.
type ProgramResult struct {
	FileSet *source.FileSet
	Program *ast.Program
	Bag     *diag.Bag
}

// pendingFile is a queued path together with the import that named it.
// origin is the zero Location for the entry file.
type pendingFile struct {
	path   string
	origin source.Location
}

// ParseProgram parses entry and every file reachable through its imports.
// Files are visited in FIFO order, each canonical path at most once, so
// import cycles terminate. The only error returned is ctx's.
func ParseProgram(ctx context.Context, entry string, opts ProgramOptions) (*ProgramResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "parse-program")
	defer span.End("")

	fs := source.NewFileSet()
	baseDir := opts.BaseDir
	if baseDir == "" {
		if canonical, err := source.Canonicalize(entry); err == nil {
			baseDir = filepath.Dir(canonical)
		}
	}
	if baseDir != "" {
		fs.SetBaseDir(baseDir)
	}

	if abs, err := filepath.Abs(entry); err == nil {
		entry = abs
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	st := &programState{
		ctx:   ctx,
		opts:  opts,
		fs:    fs,
		bag:   bag,
		queue: []pendingFile{{path: entry}},
	}
	st.notify(entry, ProgressQueued, 0)

	for len(st.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := st.queue[0]
		st.queue = st.queue[1:]
		st.visit(next)
	}

	span.WithExtra("files", strconv.Itoa(fs.Len())).WithExtra("errors", strconv.Itoa(bag.ErrorCount()))

	res := &ProgramResult{FileSet: fs, Bag: bag}
	if !st.failed && !bag.HasErrors() {
		res.Program = &ast.Program{Files: st.files}
	}
	return res, nil
}

type programState struct {
	ctx    context.Context
	opts   ProgramOptions
	fs     *source.FileSet
	bag    *diag.Bag
	queue  []pendingFile
	files  []*ast.File
	done   int
	failed bool
	read   uint64 // bytes of source loaded so far
}

func (st *programState) visit(next pendingFile) {
	started := time.Now()
	if st.fs.Contains(next.path) {
		st.done++
		st.notify(next.path, ProgressSkipped, time.Since(started))
		return
	}

	ctx, span := trace.Start(st.ctx, trace.ScopePass, "file")
	defer span.End(next.path)

	stopLoad := st.opts.Timer.Track("load")
	file, added, err := st.fs.Load(next.path)
	if added {
		st.read += uint64(len(file.Text))
		stopLoad(humanize.Bytes(st.read))
	} else {
		stopLoad("")
	}
	if err != nil {
		st.failed = true
		st.done++
		diag.ReportError(diag.BagReporter{Bag: st.bag}, diag.IOLoadFileError, next.origin,
			fmt.Sprintf("could not load file: %v", err)).Emit()
		st.notify(next.path, ProgressFailed, time.Since(started))
		return
	}
	if !added {
		st.done++
		st.notify(next.path, ProgressSkipped, time.Since(started))
		return
	}
	span.WithExtra("path", st.fs.DisplayPath(file))

	parsed, ok, err := parseOne(ctx, file, st.bag, st.opts.MaxDiagnostics, st.opts.Timer)
	st.done++
	if err != nil || !ok {
		st.failed = true
		st.notify(next.path, ProgressFailed, time.Since(started))
		return
	}

	st.files = append(st.files, parsed)
	for _, imp := range parsed.Imports() {
		target := ImportPath(file, imp)
		trace.Point(ctx, trace.ScopeFile, "import", target)
		st.queue = append(st.queue, pendingFile{path: target, origin: imp.Location})
		st.notify(target, ProgressQueued, 0)
	}
	st.notify(next.path, ProgressParsed, time.Since(started))
}

func (st *programState) notify(path string, stage ProgressStage, elapsed time.Duration) {
	if st.opts.Progress == nil {
		return
	}
	st.opts.Progress(ProgressEvent{
		Path:    path,
		Stage:   stage,
		Done:    st.done,
		Total:   st.done + len(st.queue),
		Elapsed: elapsed,
	})
}

// ImportPath maps `import a::b::c;` in from to <dir of from>/a/b/c.adze.
func ImportPath(from *source.File, imp *ast.Import) string {
	parts := ast.Parts(imp.Path)
	rel := filepath.Join(parts...) + FileExt
	if from == nil || from.Path == "" {
		return rel
	}
	return filepath.Join(filepath.Dir(from.Path), rel)
}
