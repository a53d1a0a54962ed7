package trace

import "errors"

// MultiTracer sends every event to each of its tracers. Its level is the
// most verbose level among them.
type MultiTracer struct {
	tracers []Tracer
}

func NewMultiTracer(tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers}
}

// Emit hands each tracer its own copy, stream tracers stamp Seq in place.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		if !tr.Enabled() {
			continue
		}
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level {
	level := LevelOff
	for _, tr := range t.tracers {
		level = max(level, tr.Level())
	}
	return level
}

func (t *MultiTracer) Enabled() bool {
	return t.Level() > LevelOff
}
