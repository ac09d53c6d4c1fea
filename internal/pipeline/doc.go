// Package pipeline implements the duplicate-file detection pipeline:
// parallel directory walking, size grouping, partial-hash pruning, and
// full-hash confirmation. It consumes a config.Config and a set of root
// paths and produces a Report; rendering that Report is the caller's
// concern (see internal/render).
package pipeline
