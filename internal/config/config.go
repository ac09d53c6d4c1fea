// Package config defines the pipeline's Config value: the immutable,
// caller-supplied settings that drive a scan. Parsing flags into a
// Config is the CLI layer's job (internal/cli); this package only
// validates and defaults one.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Allowed output formats for the renderer (consumed by internal/render,
// not by the pipeline itself).
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config is the immutable, shared-by-reference input to a pipeline run.
type Config struct {
	// Roots are the filesystem paths to scan. At least one is required.
	Roots []string
	// Threads sizes the worker pool. Zero means "use the default"
	// (runtime.NumCPU()).
	Threads int
	// FollowSymlinks controls whether symlinked directories are
	// traversed. Defaults to false.
	FollowSymlinks bool
	// Format is one of FormatText, FormatCSV, FormatJSON. Consumed by
	// the renderer, not the pipeline.
	Format string
	// OutputPath is an optional destination for the rendered report. An
	// empty path means "write to stdout".
	OutputPath string
}

// New returns a Config with defaults applied: Threads = runtime.NumCPU(),
// Format = FormatText, FollowSymlinks = false.
func New() Config {
	return Config{
		Threads: runtime.NumCPU(),
		Format:  FormatText,
	}
}

// Validate reports the first problem found, or nil if cfg is usable: a
// missing root, a negative thread count, or an unrecognized format.
// Threads == 0 is valid here; it is resolved to runtime.NumCPU() by
// Resolved(), which the pipeline calls after validating.
func (c Config) Validate() error {
	if len(c.Roots) == 0 {
		return errors.New("config: at least one root is required")
	}

	for _, root := range c.Roots {
		if root == "" {
			return errors.New("config: root path must not be empty")
		}
	}

	if c.Threads < 0 {
		return fmt.Errorf("config: threads must not be negative, got %d", c.Threads)
	}

	switch c.Format {
	case FormatText, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("config: invalid format %q: must be one of txt, csv, json", c.Format)
	}

	return nil
}

// Resolved returns a copy of c with zero-valued defaults filled in:
// Threads == 0 becomes runtime.NumCPU(). Callers should validate before
// resolving; Resolved does not itself check for negative values.
func (c Config) Resolved() Config {
	if c.Threads == 0 {
		c.Threads = runtime.NumCPU()
	}

	return c
}
