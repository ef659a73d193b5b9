package trace

import (
	"io"
	"sync"
)

// Recorder is the tracer behind every sns command. It writes each admitted
// event to an optional stream and keeps the most recent ones in an optional
// fixed-size ring, which the terminal UI shows in its trace pane.
type Recorder struct {
	level  Level
	format Format

	mu   sync.Mutex
	w    io.Writer // nil: только кольцо
	ring []Event   // nil: только поток
	next int       // позиция следующей записи в ring
	kept int       // сколько ячеек ring занято
}

// NewStream returns a Recorder that writes every event to w in format.
func NewStream(w io.Writer, level Level, format Format) *Recorder {
	return &Recorder{level: level, format: format, w: w}
}

// NewRing returns a Recorder that only remembers the last size events.
func NewRing(size int, level Level) *Recorder {
	if size <= 0 {
		size = 256
	}
	return &Recorder{level: level, ring: make([]Event, size)}
}

func (r *Recorder) Level() Level { return r.level }

// Keeps reports whether r has a ring, i.e. Tail can return anything.
func (r *Recorder) Keeps() bool { return r != nil && r.ring != nil }

func (r *Recorder) Emit(ev *Event) {
	if !r.level.Allows(ev) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = nextSeq()
	}
	var line []byte
	if r.w != nil {
		line = FormatEvent(ev, r.format)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ring != nil {
		r.ring[r.next] = *ev
		r.next = (r.next + 1) % len(r.ring)
		r.kept = min(r.kept+1, len(r.ring))
	}
	if line != nil {
		// трасса не должна ломать редактор: ошибки записи игнорируем
		_, _ = r.w.Write(line) //nolint:errcheck
	}
}

// Tail returns up to n most recent kept events, oldest first.
func (r *Recorder) Tail(n int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	n = min(max(n, 0), r.kept)
	out := make([]Event, n)
	start := r.next - n
	if start < 0 {
		start += len(r.ring)
	}
	for i := range out {
		out[i] = r.ring[(start+i)%len(r.ring)]
	}
	return out
}

// Snapshot returns every kept event, oldest first.
func (r *Recorder) Snapshot() []Event { return r.Tail(len(r.ring)) }

// Flush flushes the stream when it is buffered.
func (r *Recorder) Flush() error {
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes the stream and closes it if it is closable.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		return err
	}
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
