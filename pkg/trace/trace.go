// Package trace records the output of a lesson run as a sequence of events
// and writes it back out again.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

// Supported trace file formats.
const (
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// cborEncMode writes canonical CBOR so identical runs produce identical files.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEncMode = em
}

// ErrUnknownFormat is returned for a format other than FormatJSON or FormatCBOR.
var ErrUnknownFormat = errors.New("unknown trace format")

// CheckFormat reports whether format can be read and written.
func CheckFormat(format string) error {
	switch format {
	case FormatJSON, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load reads a trace file written by Save. An empty format is detected
// from the file contents.
func Load(filename, format string) ([]Event, error) {
	if format != "" {
		if err := CheckFormat(format); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if format == "" {
		format, err = Detect(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read trace file: %w", err)
		}
	}
	return Decode(r, format)
}

// Detect peeks at the first non-space byte of r. JSON traces start with
// '{'; a CBOR event is a map, whose initial byte never is. An empty trace
// reads as JSON.
func Detect(r *bufio.Reader) (string, error) {
	for {
		b, err := r.Peek(1)
		if errors.Is(err, io.EOF) {
			return FormatJSON, nil
		}
		if err != nil {
			return "", err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			r.Discard(1)
			continue
		case '{':
			return FormatJSON, nil
		default:
			return FormatCBOR, nil
		}
	}
}

// Decode reads events from r until it is exhausted.
func Decode(r io.Reader, format string) ([]Event, error) {
	var trace []Event
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		for dec.More() {
			var e Event
			if err := dec.Decode(&e); err != nil {
				return nil, fmt.Errorf("failed to decode event: %w", err)
			}
			trace = append(trace, e)
		}
	case FormatCBOR:
		dec := cbor.NewDecoder(r)
		for {
			var e Event
			err := dec.Decode(&e)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("failed to decode event: %w", err)
			}
			if !e.Kind.Valid() {
				return nil, fmt.Errorf("failed to decode event: invalid event kind %d", uint8(e.Kind))
			}
			trace = append(trace, e)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return trace, nil
}

// Save writes a trace to filename, replacing any existing file. The trace is
// written to a temporary file next to filename and renamed into place, so a
// failed save leaves no partial trace behind.
func Save(filename, format string, trace []Event) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(filename), ".trace-*")
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}

	w := bufio.NewWriter(f)
	err = Encode(w, format, trace)
	if err == nil {
		err = w.Flush()
	}
	err = errors.Join(err, f.Close())
	if err == nil {
		err = os.Rename(f.Name(), filename)
	}
	if err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}

// Encode writes events to w: one JSON object per line, or a CBOR item
// stream.
func Encode(w io.Writer, format string, trace []Event) error {
	type encoder interface{ Encode(v any) error }

	var enc encoder
	switch format {
	case FormatJSON:
		enc = json.NewEncoder(w)
	case FormatCBOR:
		enc = cborEncMode.NewEncoder(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	for _, e := range trace {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

// Replay writes the text of every line event to w, reproducing the output
// of the recorded run. Enter and exit events carry no output.
func Replay(w io.Writer, trace []Event) error {
	for _, e := range trace {
		if e.Kind != KindLine {
			continue
		}
		if _, err := io.WriteString(w, e.Text); err != nil {
			return err
		}
	}
	return nil
}

// Lessons returns the lesson names in the order they were entered.
func Lessons(trace []Event) []string {
	var names []string
	for _, e := range trace {
		if e.Kind == KindEnter {
			names = append(names, e.Lesson)
		}
	}
	return names
}
