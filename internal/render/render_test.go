package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dupfind/internal/pipeline"
)

func sampleReport() pipeline.Report {
	return pipeline.Report{
		Groups: []pipeline.DuplicateGroup{
			{Size: 10, Count: 2, Paths: []string{"/a/x", "/a/y"}},
		},
		Metrics: pipeline.Metrics{
			TotalFiles:       2,
			DuplicateGroups:  1,
			DuplicateFiles:   2,
			ReclaimableBytes: 10,
		},
	}
}

func TestWriteTextHeaderFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeText(&buf, sampleReport()); err != nil {
		t.Fatalf("writeText: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# group 1  size=10  count=2  reclaimable=10") {
		t.Errorf("missing expected header, got:\n%s", out)
	}

	if !strings.Contains(out, "/a/x") || !strings.Contains(out, "/a/y") {
		t.Errorf("missing expected paths, got:\n%s", out)
	}
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "group,size,path" {
		t.Errorf("header = %q, want %q", lines[0], "group,size,path")
	}

	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	metrics, ok := decoded["metrics"].(map[string]any)
	if !ok {
		t.Fatal("metrics field missing or not an object")
	}

	for _, field := range []string{"total_files", "duplicate_groups", "reclaimable_bytes"} {
		if _, ok := metrics[field]; !ok {
			t.Errorf("metrics missing field %q", field)
		}
	}

	groups, ok := decoded["groups"].([]any)
	if !ok || len(groups) != 1 {
		t.Fatalf("groups = %v, want one element", decoded["groups"])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "xml", sampleReport()); err == nil {
		t.Error("Write() = nil, want error for unknown format")
	}
}
