package driver

import "time"

// ProgressStage reports what just happened to a file in the program parse.
type ProgressStage int

const (
	// ProgressQueued: the path was discovered (entry or import) and enqueued.
	ProgressQueued ProgressStage = iota
	// ProgressParsed: the file was lexed and parsed without errors.
	ProgressParsed
	// ProgressFailed: loading, lexing or parsing the file reported errors.
	ProgressFailed
	// ProgressSkipped: the path was already visited.
	ProgressSkipped
)

func (s ProgressStage) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressParsed:
		return "parsed"
	case ProgressFailed:
		return "failed"
	case ProgressSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ProgressEvent describes one step of ParseProgram.
// Done counts finished files; Total is Done plus the queue length.
type ProgressEvent struct {
	Path    string
	Stage   ProgressStage
	Done    int
	Total   int
	Elapsed time.Duration
}

// ProgressSink receives progress events emitted during ParseProgram.
// It is called on the parsing goroutine and must not block for long.
type ProgressSink func(ProgressEvent)
