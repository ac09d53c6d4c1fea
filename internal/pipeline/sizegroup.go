package pipeline

// groupBySize buckets entries by exact byte size and drops buckets with
// fewer than two members. total_files/total_bytes are accumulated over
// every entry seen, not just survivors: those counts
// describe the whole walk, independent of whether a file later turns out
// to be unique.
func groupBySize(entries []FileEntry, m *liveMetrics) []candidateGroup {
	buckets := make(map[int64][]FileEntry)

	for _, e := range entries {
		m.totalFiles.Add(1)
		m.totalBytes.Add(e.Size)
		buckets[e.Size] = append(buckets[e.Size], e)
	}

	groups := make([]candidateGroup, 0, len(buckets))

	for size, group := range buckets {
		if len(group) < 2 {
			continue
		}

		groups = append(groups, candidateGroup{size: size, entries: group})
	}

	m.candidateGroups.Add(int64(len(groups)))

	return groups
}
