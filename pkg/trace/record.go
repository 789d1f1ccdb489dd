package trace

import (
	"bytes"
	"io"
	"sync"
)

// Recorder is an io.Writer that passes output through to an underlying
// writer and reports each completed line to a Sink, tagged with the lesson
// that produced it.
type Recorder struct {
	mu      sync.Mutex
	out     io.Writer
	sink    Sink
	seq     uint64
	lesson  string
	partial []byte
}

// NewRecorder creates a recorder writing to out and reporting to sink.
func NewRecorder(out io.Writer, sink Sink) *Recorder {
	return &Recorder{out: out, sink: sink}
}

// Write forwards p and records every line it completes.
func (r *Recorder) Write(p []byte) (int, error) {
	n, err := r.out.Write(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := p[:n]
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			r.partial = append(r.partial, data...)
			break
		}
		r.partial = append(r.partial, data[:i+1]...)
		r.flushLocked()
		data = data[i+1:]
	}
	return n, err
}

// Enter marks the start of a lesson.
func (r *Recorder) Enter(lesson string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	r.lesson = lesson
	r.emitLocked(Event{Kind: KindEnter, Lesson: lesson})
}

// Exit marks the end of a lesson.
func (r *Recorder) Exit(lesson string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	r.emitLocked(Event{Kind: KindExit, Lesson: lesson})
	r.lesson = ""
}

// Finalize records any unterminated output and finalizes the sink.
func (r *Recorder) Finalize() error {
	r.mu.Lock()
	r.flushLocked()
	r.mu.Unlock()
	return r.sink.OnFinalize()
}

func (r *Recorder) flushLocked() {
	if len(r.partial) == 0 {
		return
	}
	r.emitLocked(Event{Kind: KindLine, Lesson: r.lesson, Text: string(r.partial)})
	r.partial = r.partial[:0]
}

func (r *Recorder) emitLocked(e Event) {
	r.seq++
	e.Seq = r.seq
	r.sink.OnEvent(e)
}
