package render

import (
	"fmt"
	"io"

	"dupfind/internal/pipeline"
)

// writeText renders groups separated by a blank line, each with a
// header line `# group N  size=S  count=C  reclaimable=R` followed by
// one path per line.
func writeText(w io.Writer, report pipeline.Report) error {
	for i, g := range report.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "# group %d  size=%d  count=%d  reclaimable=%d\n",
			i+1, g.Size, g.Count, g.Reclaimable()); err != nil {
			return err
		}

		for _, p := range g.Paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
	}

	return nil
}
