package pipeline

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/panjf2000/ants/v2"
	"lukechampine.com/blake3"
)

// fullHashChunkSize is the read buffer used to stream a file's full
// contents into the hasher.
const fullHashChunkSize = 65536

// fullHash streams path from offset 0 to EOF in fullHashChunkSize chunks,
// updating a BLAKE3 hash incrementally, and returns the finalized digest
// along with the number of bytes actually read.
func fullHash(path string) (Digest, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, 0, err
	}
	defer f.Close()

	hasher := blake3.New(32, nil)
	buf := make([]byte, fullHashChunkSize)

	var total int64

	for {
		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
			total += int64(n)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Digest{}, total, err
		}
	}

	var digest Digest

	copy(digest[:], hasher.Sum(nil))

	return digest, total, nil
}

// runFullHash hashes every file surviving stage 2 across all groups
// concurrently via a single work-stealing pool, and regroups by (size,
// full_digest). Groups of cardinality < 2 after regrouping are dropped;
// the rest are the final DuplicateGroups.
func runFullHash(pool *ants.Pool, groups []candidateGroup, m *liveMetrics, sink WarningSink) []DuplicateGroup {
	var flat []FileEntry
	for _, group := range groups {
		flat = append(flat, group.entries...)
	}

	out := newShardedMap()

	runEach(pool, len(flat), func(i int) {
		entry := flat[i]

		digest, n, err := fullHash(entry.Path)
		if err != nil {
			sink.Warn(HashWarning, entry.Path, fmt.Errorf("full hash: %w", err))

			return
		}

		m.bytesHashedFull.Add(n)
		key := fmt.Sprintf("%d:%x", entry.Size, digest)
		out.add(key, entry)
	})

	buckets := out.groups()
	result := make([]DuplicateGroup, 0, len(buckets))

	for _, entries := range buckets {
		result = append(result, toDuplicateGroup(entries))
	}

	m.duplicateGroups.Add(int64(len(result)))

	for _, g := range result {
		m.duplicateFiles.Add(int64(g.Count))
		m.reclaimableBytes.Add(g.Reclaimable())
	}

	return result
}

// toDuplicateGroup converts a flat slice of equally-sized, equally-hashed
// entries into a DuplicateGroup with paths sorted lexicographically
// ascending.
func toDuplicateGroup(entries []FileEntry) DuplicateGroup {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}

	sort.Strings(paths)

	return DuplicateGroup{
		Size:  entries[0].Size,
		Count: len(entries),
		Paths: paths,
	}
}
