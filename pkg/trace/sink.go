package trace

import "sync"

// Sink receives the events a Recorder produces.
type Sink interface {
	// OnEvent is called for every event, in sequence order.
	OnEvent(e Event)

	// OnFinalize is called once at the end of the run (e.g., to save the trace).
	OnFinalize() error
}

// MemorySink keeps events in memory.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *MemorySink) OnEvent(e Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// OnFinalize does nothing.
func (s *MemorySink) OnFinalize() error { return nil }

// Events returns a copy of the events received so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// FileSink collects events and saves them to a trace file on finalize.
type FileSink struct {
	MemorySink
	path   string
	format string
}

// NewFileSink creates a sink that writes path in the given format.
func NewFileSink(path, format string) (*FileSink, error) {
	if err := CheckFormat(format); err != nil {
		return nil, err
	}
	return &FileSink{path: path, format: format}, nil
}

// Path returns the file the trace is saved to.
func (s *FileSink) Path() string {
	return s.path
}

// OnFinalize saves the recorded trace to file.
func (s *FileSink) OnFinalize() error {
	return Save(s.path, s.format, s.Events())
}
