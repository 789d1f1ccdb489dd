// Package config handles dummies.toml run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/amirkhaki/gofordummies/pkg/lessons"
	"github.com/amirkhaki/gofordummies/pkg/trace"
)

// Environment variables read by Load.
const (
	EnvConfig      = "DUMMIES_CONFIG"
	EnvTrace       = "DUMMIES_TRACE"
	EnvTraceFormat = "DUMMIES_TRACE_FORMAT"
)

// Config represents a dummies.toml file.
type Config struct {
	Run   Run   `toml:"run"`
	Trace Trace `toml:"trace"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Run selects what a run prints.
type Run struct {
	Lessons []string `toml:"lessons"`
	Banner  bool     `toml:"banner"`
}

// Trace configures output recording. An empty Path disables it.
type Trace struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given: every
// lesson, with the banner, no trace.
func Default() *Config {
	return &Config{
		Run:   Run{Banner: true},
		Trace: Trace{Format: trace.FormatJSON},
	}
}

// Load reads the config file at path, or the one named by DUMMIES_CONFIG
// when path is empty, then applies environment overrides. With neither set
// it returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
		c.Path = path
	}

	if v := os.Getenv(EnvTrace); v != "" {
		c.Trace.Path = v
	}
	if v := os.Getenv(EnvTraceFormat); v != "" {
		c.Trace.Format = v
	}
	if c.Trace.Format == "" {
		c.Trace.Format = trace.FormatJSON
	}

	return c, nil
}

// Validate checks lesson names and the trace format.
func (c *Config) Validate() error {
	var err error
	if _, lerr := lessons.Select(c.Run.Lessons); lerr != nil {
		err = errors.Join(err, lerr)
	}
	if ferr := trace.CheckFormat(c.Trace.Format); ferr != nil {
		err = errors.Join(err, ferr)
	}
	return err
}

// Flags are the command-line overrides for a run.
type Flags struct {
	Lessons  []string
	Trace    string
	Format   string
	NoBanner bool
}

// Register adds the run flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.Lessons, "lesson", "l", nil, "lesson to run (repeatable, default all)")
	fs.StringVarP(&f.Trace, "trace", "t", "", "record the run to this trace file")
	fs.StringVarP(&f.Format, "format", "f", "", "trace format: json or cbor")
	fs.BoolVar(&f.NoBanner, "no-banner", false, "do not print the banner")
}

// Apply overrides c with every flag that was set on fs.
func (f *Flags) Apply(c *Config, fs *pflag.FlagSet) {
	if fs.Changed("lesson") {
		c.Run.Lessons = f.Lessons
	}
	if fs.Changed("trace") {
		c.Trace.Path = f.Trace
	}
	if fs.Changed("format") {
		c.Trace.Format = f.Format
	}
	if fs.Changed("no-banner") {
		c.Run.Banner = !f.NoBanner
	}
}
