package pipeline

import (
	"hash/fnv"
	"sync"
)

// shardCount is the number of partitions backing a shardedMap. Spreading
// keys across several independently-locked partitions avoids a single
// hot mutex once worker counts climb past single digits.
const shardCount = 32

// shardedMap accumulates FileEntry values keyed by an arbitrary string
// discriminator (the stage 2/3 regrouping key, already rendered to a
// string by the caller). Each of shardCount partitions has its own
// mutex, so unrelated keys almost never contend.
type shardedMap struct {
	shards [shardCount]shard
}

type shard struct {
	mu   sync.Mutex
	data map[string][]FileEntry
}

func newShardedMap() *shardedMap {
	sm := &shardedMap{}
	for i := range sm.shards {
		sm.shards[i].data = make(map[string][]FileEntry)
	}

	return sm
}

func (sm *shardedMap) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return &sm.shards[h.Sum32()%shardCount]
}

// add appends entry to the bucket for key, creating it if needed.
func (sm *shardedMap) add(key string, entry FileEntry) {
	s := sm.shardFor(key)

	s.mu.Lock()
	s.data[key] = append(s.data[key], entry)
	s.mu.Unlock()
}

// groups returns every bucket with two or more members. Singleton
// buckets are dropped here, at the stage boundary.
func (sm *shardedMap) groups() [][]FileEntry {
	var out [][]FileEntry

	for i := range sm.shards {
		s := &sm.shards[i]

		s.mu.Lock()
		for _, entries := range s.data {
			if len(entries) >= 2 {
				out = append(out, entries)
			}
		}
		s.mu.Unlock()
	}

	return out
}
