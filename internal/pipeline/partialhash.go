package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/panjf2000/ants/v2"
	"lukechampine.com/blake3"
)

// headSize and tailSize are the head and tail window sizes used to build
// the partial fingerprint.
const (
	headSize = 4096
	tailSize = 4096
)

// partialHash opens the file at path and computes its partial
// fingerprint: BLAKE3(head || tail), where head is up to headSize bytes from
// offset 0 and tail is up to tailSize bytes from the end, omitted
// entirely when size <= headSize+tailSize (the head read already covers
// the file or nearly so). Returns the digest and the number of bytes
// actually read (h+t), which the caller adds to bytes_hashed_partial.
func partialHash(path string, size int64) (Digest, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, 0, err
	}
	defer f.Close()

	head := make([]byte, headSize)

	h, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Digest{}, 0, err
	}

	head = head[:h]

	var tail []byte

	var t int

	if size > headSize+tailSize {
		if _, err := f.Seek(size-tailSize, io.SeekStart); err != nil {
			return Digest{}, 0, err
		}

		tail = make([]byte, tailSize)

		t, err = io.ReadFull(f, tail)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return Digest{}, 0, err
		}

		tail = tail[:t]
	}

	hasher := blake3.New(32, nil)
	hasher.Write(head)
	hasher.Write(tail)

	var digest Digest

	copy(digest[:], hasher.Sum(nil))

	return digest, int64(h + t), nil
}

// runPartialHash hashes the files of each stage-1 candidate group
// concurrently on the pool, one group after another (the next group is
// submitted only once the previous one has finished), and regroups
// survivors by
// (size, partial_digest). Per-file I/O failure drops that file from its
// group and is reported as a HashWarning; the group continues with the
// remaining members.
func runPartialHash(pool *ants.Pool, groups []candidateGroup, m *liveMetrics, sink WarningSink) []candidateGroup {
	out := newShardedMap()

	for _, group := range groups {
		entries := group.entries

		runEach(pool, len(entries), func(i int) {
			entry := entries[i]

			digest, n, err := partialHash(entry.Path, entry.Size)
			if err != nil {
				sink.Warn(HashWarning, entry.Path, fmt.Errorf("partial hash: %w", err))

				return
			}

			m.bytesHashedPartial.Add(n)
			// group.size, not entry.Size: every member of group shares
			// the discriminator by construction, and using it here is
			// what makes that invariant the one actually in force.
			key := fmt.Sprintf("%d:%x", group.size, digest)
			out.add(key, entry)
		})
	}

	bySize := regroupBySize(out.groups())
	m.partialGroups.Add(int64(len(bySize)))

	return bySize
}

// regroupBySize converts the flat list of surviving buckets back into
// candidateGroups, recovering each bucket's common size from its first
// member (all members of a bucket share size by construction).
func regroupBySize(buckets [][]FileEntry) []candidateGroup {
	groups := make([]candidateGroup, 0, len(buckets))

	for _, entries := range buckets {
		if len(entries) == 0 {
			continue
		}

		groups = append(groups, candidateGroup{size: entries[0].Size, entries: entries})
	}

	return groups
}
