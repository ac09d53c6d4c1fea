package pipeline

import "sync/atomic"

// Metrics is a plain aggregate of monotonic counters and stage timers.
// The counters are accumulated with ordinary atomic adds in liveMetrics
// during the run; no coordination between counters is required because a
// Report only observes them after every stage has quiesced. The timer
// fields are set by Run afterwards.
type Metrics struct {
	TotalFiles         int64
	TotalBytes         int64
	CandidateGroups    int64
	PartialGroups      int64
	DuplicateGroups    int64
	DuplicateFiles     int64
	ReclaimableBytes   int64
	BytesHashedPartial int64
	BytesHashedFull    int64
	TimeStage1Secs     float64
	TimeStage2Secs     float64
	TimeStage3Secs     float64
	TimeTotalSecs      float64
}

// liveMetrics holds the atomic counters touched concurrently by the
// running pipeline. snapshot() copies them into a plain Metrics once the
// relevant stage has drained.
type liveMetrics struct {
	totalFiles         atomic.Int64
	totalBytes         atomic.Int64
	candidateGroups    atomic.Int64
	partialGroups      atomic.Int64
	duplicateGroups    atomic.Int64
	duplicateFiles     atomic.Int64
	reclaimableBytes   atomic.Int64
	bytesHashedPartial atomic.Int64
	bytesHashedFull    atomic.Int64
}

// snapshot copies the live counters into a Metrics value. Timer fields
// are filled in separately by the pipeline, which owns the stage clocks.
func (m *liveMetrics) snapshot() Metrics {
	return Metrics{
		TotalFiles:         m.totalFiles.Load(),
		TotalBytes:         m.totalBytes.Load(),
		CandidateGroups:    m.candidateGroups.Load(),
		PartialGroups:      m.partialGroups.Load(),
		DuplicateGroups:    m.duplicateGroups.Load(),
		DuplicateFiles:     m.duplicateFiles.Load(),
		ReclaimableBytes:   m.reclaimableBytes.Load(),
		BytesHashedPartial: m.bytesHashedPartial.Load(),
		BytesHashedFull:    m.bytesHashedFull.Load(),
	}
}
