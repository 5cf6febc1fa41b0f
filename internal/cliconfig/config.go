package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults for directory layout and archiver behavior.
const (
	DefaultManifestName  = "manifest.json"
	DefaultArchiverBin   = "zip"
	DefaultSourceDirName = "src"
	DefaultDistDirName   = "dist"
)

// Config holds CLI configuration for plugpack. All roots are made absolute
// by Validate; there is no hidden process-wide path state.
type Config struct {
	// ProjectRoot is the project directory targets and output paths are
	// relative to.
	ProjectRoot string

	// SourceRoot is the canonical plugin source directory. Defaults to
	// ProjectRoot/src.
	SourceRoot string

	// DistDir receives the produced archives. Defaults to ProjectRoot/dist.
	DistDir string

	// ManifestName is the per-plugin manifest filename.
	ManifestName string

	// ArchiverBin is the external archiver binary.
	ArchiverBin string

	// ArchiveTimeout bounds one archiver invocation. Zero disables the bound.
	ArchiveTimeout time.Duration

	// WatchDebounce coalesces filesystem events in watch mode.
	WatchDebounce time.Duration

	// All requests packaging of every immediate subdirectory of SourceRoot.
	All bool

	// Watch keeps running after the initial batch, repackaging targets on
	// source changes.
	Watch bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ProjectRoot:    ".",
		ManifestName:   DefaultManifestName,
		ArchiverBin:    DefaultArchiverBin,
		ArchiveTimeout: 10 * time.Minute,
		WatchDebounce:  300 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
	root, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	c.ProjectRoot = root

	c.SourceRoot = c.resolveDir(c.SourceRoot, DefaultSourceDirName)
	c.DistDir = c.resolveDir(c.DistDir, DefaultDistDirName)

	if c.ManifestName == "" {
		c.ManifestName = DefaultManifestName
	}
	if strings.ContainsAny(c.ManifestName, `/\`) {
		return fmt.Errorf("manifest name must be a bare filename, got %q", c.ManifestName)
	}

	if c.ArchiverBin == "" {
		c.ArchiverBin = DefaultArchiverBin
	}
	if c.ArchiveTimeout < 0 {
		return fmt.Errorf("archive timeout must not be negative")
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = 300 * time.Millisecond
	}

	return nil
}

// resolveDir anchors dir under the project root, substituting the default
// name when unset.
func (c *Config) resolveDir(dir, defaultName string) string {
	if dir == "" {
		return filepath.Join(c.ProjectRoot, defaultName)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.ProjectRoot, dir)
}

var logger zerolog.Logger

func init() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Logger returns the package logger used by the CLI.
func Logger() zerolog.Logger {
	return logger
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
