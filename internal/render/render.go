// Package render serializes a pipeline.Report for a caller to display or
// write to disk. It sits outside the pipeline itself: argument parsing,
// output serialization, and path conventions are external collaborators
// of the core scan.
package render

import (
	"fmt"
	"io"

	"dupfind/internal/pipeline"
)

// Write renders report in the given format ("txt", "csv", or "json") to
// w. It is the single entry point the CLI layer calls after a run.
func Write(w io.Writer, format string, report pipeline.Report) error {
	switch format {
	case "txt":
		return writeText(w, report)
	case "csv":
		return writeCSV(w, report)
	case "json":
		return writeJSON(w, report)
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}
