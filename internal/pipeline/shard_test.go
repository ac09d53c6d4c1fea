package pipeline

import (
	"fmt"
	"sync"
	"testing"
)

func TestShardedMapDropsSingletons(t *testing.T) {
	sm := newShardedMap()
	sm.add("only-one", FileEntry{Path: "a"})
	sm.add("pair", FileEntry{Path: "b"})
	sm.add("pair", FileEntry{Path: "c"})

	groups := sm.groups()
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}

	if len(groups[0]) != 2 {
		t.Errorf("len(groups[0]) = %d, want 2", len(groups[0]))
	}
}

func TestShardedMapConcurrentAdds(t *testing.T) {
	sm := newShardedMap()

	var wg sync.WaitGroup

	const n = 500

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			key := fmt.Sprintf("key-%d", i%10)
			sm.add(key, FileEntry{Path: fmt.Sprintf("path-%d", i)})
		}(i)
	}

	wg.Wait()

	total := 0
	for _, g := range sm.groups() {
		total += len(g)
	}

	if total != n {
		t.Errorf("total entries across groups = %d, want %d", total, n)
	}
}
