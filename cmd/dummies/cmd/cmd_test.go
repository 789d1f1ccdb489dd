package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirkhaki/gofordummies/pkg/config"
	"github.com/amirkhaki/gofordummies/pkg/lessons"
	"github.com/amirkhaki/gofordummies/pkg/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvTrace, "")
	t.Setenv(config.EnvTraceFormat, "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootRunsEveryLesson(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var want bytes.Buffer
	lessons.RunAll(&want)

	// Pointer addresses differ between runs; compare everything else.
	strip := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, "Pointers - Pointer num: ") {
				kept = append(kept, line)
			}
		}
		return strings.Join(kept, "\n")
	}
	if strip(out) != strip(want.String()) {
		t.Errorf("Root command output differs from RunAll")
	}
}

func TestRunSelectedLessons(t *testing.T) {
	out, err := execute(t, "run", "-l", "operators", "--no-banner")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "Operators - Num: 5\nOperators - Num: 8\nOperators - Num: 10\nOperators - Num: 11\n" +
		"Operators - Num: 10\nOperators - Num: 8\nOperators - Num: 5\n"
	if out != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, out)
	}
}

func TestRunUnknownLesson(t *testing.T) {
	_, err := execute(t, "run", "-l", "Goroutines")
	if err == nil || !strings.Contains(err.Error(), "Goroutines") {
		t.Errorf("Expected unknown lesson error, got %v", err)
	}
}

func TestRunTraceAndReplay(t *testing.T) {
	for _, format := range []string{trace.FormatJSON, trace.FormatCBOR} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.trace")

			out, err := execute(t, "run", "-l", "Loops", "-l", "Classes", "--trace", path, "--format", format)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if !strings.HasPrefix(out, lessons.Banner+"\n") {
				t.Error("Expected banner in traced run")
			}

			replayed, err := execute(t, "replay", path, "--format", format)
			if err != nil {
				t.Fatalf("replay failed: %v", err)
			}
			if replayed != out {
				t.Errorf("Replay differs from the recorded run:\n%s\n---\n%s", out, replayed)
			}

			events, err := trace.Load(path, format)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got := trace.Lessons(events); strings.Join(got, ",") != "Loops,Classes" {
				t.Errorf("Expected lessons Loops,Classes, got %v", got)
			}
		})
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dummies.toml")
	body := "[run]\nlessons = [\"Flow\"]\nbanner = false\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := execute(t, "--config", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(out, "Flow - if\n") || strings.Contains(out, "Loops - ") {
		t.Errorf("Expected only the Flow lesson, got:\n%s", out)
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(lessons.All()) {
		t.Fatalf("Expected %d lines, got %d", len(lessons.All()), len(lines))
	}
	if !strings.HasPrefix(lines[0], "1") || !strings.Contains(lines[0], "Variables") {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[8], "Pointers") {
		t.Errorf("Unexpected last line %q", lines[8])
	}
}

func TestSource(t *testing.T) {
	out, err := execute(t, "source", "loops", "PassByReference")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{
		"// loops.go:",
		"func Loops(w io.Writer) {",
		"// functions.go:",
		"func PassByReference(num *int) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}

func TestSourceErrors(t *testing.T) {
	if _, err := execute(t, "source"); err == nil {
		t.Error("Expected error without a name")
	}

	out, err := execute(t, "source", "Flow", "Nope")
	if err == nil || !strings.Contains(err.Error(), "Nope") {
		t.Errorf("Expected not found error for Nope, got %v", err)
	}
	if !strings.Contains(out, "func Flow(w io.Writer) {") {
		t.Error("Known names should still print when another is missing")
	}
}

func TestReplayDetectsCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.cbor")

	out, err := execute(t, "run", "-l", "Arrays", "--trace", path, "--format", trace.FormatCBOR)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	replayed, err := execute(t, "replay", path)
	if err != nil {
		t.Fatalf("replay without --format failed: %v", err)
	}
	if replayed != out {
		t.Errorf("Replay differs from the recorded run")
	}
}

func TestReplayMissingFile(t *testing.T) {
	_, err := execute(t, "replay", filepath.Join(t.TempDir(), "missing.trace"))
	if err == nil {
		t.Error("Expected error for missing trace")
	}
}

// captureStderr runs fn with os.Stderr redirected and returns what was
// written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()

	os.Stderr = orig
	w.Close()
	out := <-done
	r.Close()
	return out
}

func TestVerboseDiagnosticsGoToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")

	var out string
	var err error
	stderr := captureStderr(t, func() {
		out, err = execute(t, "-vvvv", "run", "-l", "flow", "--trace", path)
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "trace saved to " + path
	if !strings.Contains(stderr, want) {
		t.Errorf("Expected %q on stderr, got %q", want, stderr)
	}
	if strings.Contains(out, "trace saved") {
		t.Errorf("Diagnostics leaked into stdout:\n%s", out)
	}
	if !strings.HasPrefix(out, lessons.Banner+"\nFlow - if\n") {
		t.Errorf("Unexpected stdout:\n%s", out)
	}
}

func TestQuietByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")

	stderr := captureStderr(t, func() {
		if _, err := execute(t, "run", "-l", "flow", "--trace", path); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})
	if strings.Contains(stderr, "trace saved") {
		t.Errorf("Expected no info diagnostics without -v, got %q", stderr)
	}
}
