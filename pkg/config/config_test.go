package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/amirkhaki/gofordummies/pkg/config"
	"github.com/amirkhaki/gofordummies/pkg/lessons"
	"github.com/amirkhaki/gofordummies/pkg/trace"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dummies.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvTrace, "")
	t.Setenv(config.EnvTraceFormat, "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.Run.Banner || len(c.Run.Lessons) != 0 {
		t.Errorf("Unexpected run defaults: %+v", c.Run)
	}
	if c.Trace.Path != "" || c.Trace.Format != trace.FormatJSON {
		t.Errorf("Unexpected trace defaults: %+v", c.Trace)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[run]
lessons = ["Loops", "arrays"]
banner = false

[trace]
path = "out.trace"
format = "cbor"
`)

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Path != path {
		t.Errorf("Expected Path %s, got %s", path, c.Path)
	}
	if c.Run.Banner {
		t.Error("Expected banner off")
	}
	if strings.Join(c.Run.Lessons, ",") != "Loops,arrays" {
		t.Errorf("Unexpected lessons %v", c.Run.Lessons)
	}
	if c.Trace.Path != "out.trace" || c.Trace.Format != trace.FormatCBOR {
		t.Errorf("Unexpected trace %+v", c.Trace)
	}
}

func TestLoadFromEnvAndOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[trace]\npath = \"file.trace\"\n")
	t.Setenv(config.EnvConfig, path)
	t.Setenv(config.EnvTrace, "env.trace")
	t.Setenv(config.EnvTraceFormat, "cbor")

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Path != path {
		t.Errorf("Expected config from %s, got %q", config.EnvConfig, c.Path)
	}
	if c.Trace.Path != "env.trace" || c.Trace.Format != "cbor" {
		t.Errorf("Environment should override the file, got %+v", c.Trace)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvTrace, "env.trace")

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var f config.Flags
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse([]string{"-l", "Flow", "--lesson", "Scope", "--trace", "flag.trace", "--no-banner"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f.Apply(c, fs)

	if strings.Join(c.Run.Lessons, ",") != "Flow,Scope" {
		t.Errorf("Unexpected lessons %v", c.Run.Lessons)
	}
	if c.Trace.Path != "flag.trace" {
		t.Errorf("Expected flag trace path, got %s", c.Trace.Path)
	}
	if c.Trace.Format != trace.FormatJSON {
		t.Errorf("Unset flag should keep format, got %s", c.Trace.Format)
	}
	if c.Run.Banner {
		t.Error("Expected banner off")
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	c := config.Default()
	c.Run.Lessons = []string{"Generics"}
	c.Trace.Format = "yaml"

	err := c.Validate()
	if !errors.Is(err, lessons.ErrUnknownLesson) {
		t.Errorf("Expected ErrUnknownLesson, got %v", err)
	}
	if !errors.Is(err, trace.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "cannot read") {
		t.Errorf("Expected read error, got %v", err)
	}

	path := writeConfig(t, "[run\nbanner = ")
	if _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse error") {
		t.Errorf("Expected parse error, got %v", err)
	}
}
