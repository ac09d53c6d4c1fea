package render

import (
	"encoding/json"
	"io"

	"dupfind/internal/pipeline"
)

// jsonMetrics mirrors pipeline.Metrics with snake_case field names for
// JSON output.
type jsonMetrics struct {
	TotalFiles         int64   `json:"total_files"`
	TotalBytes         int64   `json:"total_bytes"`
	CandidateGroups    int64   `json:"candidate_groups"`
	PartialGroups      int64   `json:"partial_groups"`
	DuplicateGroups    int64   `json:"duplicate_groups"`
	DuplicateFiles     int64   `json:"duplicate_files"`
	ReclaimableBytes   int64   `json:"reclaimable_bytes"`
	BytesHashedPartial int64   `json:"bytes_hashed_partial"`
	BytesHashedFull    int64   `json:"bytes_hashed_full"`
	TimeStage1Secs     float64 `json:"time_stage1_secs"`
	TimeStage2Secs     float64 `json:"time_stage2_secs"`
	TimeStage3Secs     float64 `json:"time_stage3_secs"`
	TimeTotalSecs      float64 `json:"time_total_secs"`
}

type jsonGroup struct {
	Size  int64    `json:"size"`
	Paths []string `json:"paths"`
}

type jsonReport struct {
	Metrics jsonMetrics `json:"metrics"`
	Groups  []jsonGroup `json:"groups"`
}

// writeJSON renders a single object { "metrics": {...}, "groups": [...] }.
func writeJSON(w io.Writer, report pipeline.Report) error {
	out := jsonReport{
		Metrics: jsonMetrics(report.Metrics),
		Groups:  make([]jsonGroup, 0, len(report.Groups)),
	}

	for _, g := range report.Groups {
		out.Groups = append(out.Groups, jsonGroup{Size: g.Size, Paths: g.Paths})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
