package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"dupfind/internal/pipeline"
)

// writeCSV renders header `group,size,path` followed by one row per
// file; group is the 1-based group index.
func writeCSV(w io.Writer, report pipeline.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"group", "size", "path"}); err != nil {
		return err
	}

	for i, g := range report.Groups {
		for _, p := range g.Paths {
			row := []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", g.Size), p}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
