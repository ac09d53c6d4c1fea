package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/panjf2000/ants/v2"

	"dupfind/internal/config"
)

// Run sequences the pipeline: Walker → SizeGrouper → PartialHasher →
// FullHasher, strictly staged (each stage fully consumes its input
// before the next begins), and assembles the final Report. Warnings
// encountered along the way are reported to sink; sink may be nil, in
// which case warnings are discarded.
func Run(cfg config.Config, sink WarningSink) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Resolved()

	if sink == nil {
		sink = NopSink{}
	}

	pool, err := ants.NewPool(cfg.Threads)
	if err != nil {
		return Report{}, fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Release()

	var metrics liveMetrics

	totalStart := time.Now()

	stage1Start := time.Now()

	entries, err := walk(cfg, sink)
	if err != nil {
		return Report{}, fmt.Errorf("walking roots: %w", err)
	}

	sizeGroups := groupBySize(entries, &metrics)
	timeStage1 := time.Since(stage1Start)

	stage2Start := time.Now()
	partialGroups := runPartialHash(pool, sizeGroups, &metrics, sink)
	timeStage2 := time.Since(stage2Start)

	stage3Start := time.Now()
	duplicateGroups := runFullHash(pool, partialGroups, &metrics, sink)
	timeStage3 := time.Since(stage3Start)

	sortGroups(duplicateGroups)

	m := metrics.snapshot()
	m.TimeStage1Secs = timeStage1.Seconds()
	m.TimeStage2Secs = timeStage2.Seconds()
	m.TimeStage3Secs = timeStage3.Seconds()
	m.TimeTotalSecs = time.Since(totalStart).Seconds()

	return Report{Groups: duplicateGroups, Metrics: m}, nil
}

// sortGroups orders duplicate groups by descending reclaimable bytes,
// breaking ties by ascending lexicographic order of the smallest member
// path. Paths within each group are already sorted by
// toDuplicateGroup.
func sortGroups(groups []DuplicateGroup) {
	sort.Slice(groups, func(i, j int) bool {
		ri, rj := groups[i].Reclaimable(), groups[j].Reclaimable()
		if ri != rj {
			return ri > rj
		}

		return groups[i].Paths[0] < groups[j].Paths[0]
	})
}
