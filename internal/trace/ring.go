package trace

import (
	"io"
	"slices"
	"sync"
)

// RingTracer keeps the most recent events in memory so a failed run can
// dump what led up to the failure. Older events are overwritten.
type RingTracer struct {
	mu      sync.Mutex
	buf     []Event
	size    int
	written uint64 // events ever stored; buf[written%size] is the next slot
	level   Level
}

// NewRingTracer keeps up to size events; size <= 0 means DefaultRingSize.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingTracer{buf: make([]Event, 0, size), size: size, level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	if len(t.buf) < t.size {
		t.buf = append(t.buf, stored)
	} else {
		t.buf[t.written%uint64(t.size)] = stored
	}
	t.written++
}

// Snapshot returns the buffered events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.buf) < t.size {
		return slices.Clone(t.buf)
	}
	split := int(t.written % uint64(t.size))
	return slices.Concat(t.buf[split:], t.buf[:split])
}

// Dump writes the snapshot to w, one formatted event per line.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	events := t.Snapshot()
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return err
		}
	}
	return nil
}

// Flush and Close have nothing to release: the buffer lives until Dump.
func (t *RingTracer) Flush() error { return nil }

func (t *RingTracer) Close() error { return nil }

func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
