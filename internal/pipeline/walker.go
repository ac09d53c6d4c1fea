package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"

	"dupfind/internal/config"
)

// walk traverses the roots in cfg.Roots one after another (fastwalk fans
// each root's directories out across goroutines internally) and returns every
// regular file with size > 0. A terminal error stat'ing a root itself is
// fatal; any other error visiting a directory or entry is reported to
// sink and the walk continues.
func walk(cfg config.Config, sink WarningSink) ([]FileEntry, error) {
	var (
		mu      sync.Mutex
		entries []FileEntry
	)

	fwConf := &fastwalk.Config{
		Follow: cfg.FollowSymlinks,
	}

	for _, root := range cfg.Roots {
		if info, err := os.Stat(root); err != nil {
			return nil, fmt.Errorf("accessing root %q: %w", root, err)
		} else if !info.IsDir() {
			return nil, fmt.Errorf("root %q is not a directory", root)
		}

		visited := newCycleGuard()

		//nolint:varnamelen // d is standard for DirEntry
		walkErr := fastwalk.Walk(fwConf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				sink.Warn(WalkWarning, path, err)

				return nil
			}

			if d.IsDir() {
				if cfg.FollowSymlinks && !visited.enter(path) {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				sink.Warn(WalkWarning, path, err)

				return nil
			}

			if info.Size() <= 0 {
				return nil
			}

			mu.Lock()
			entries = append(entries, FileEntry{Path: path, Size: info.Size()})
			mu.Unlock()

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking root %q: %w", root, walkErr)
		}
	}

	return entries, nil
}

// cycleGuard tracks directories already visited by canonical identity so
// that following symlinks never revisits the same directory twice. It is
// only consulted when Config.FollowSymlinks is true.
type cycleGuard struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newCycleGuard() *cycleGuard {
	return &cycleGuard{seen: make(map[string]struct{})}
}

// enter records path's canonical form and reports whether this is the
// first time it has been seen. A resolution failure is treated as
// first-seen: we'd rather traverse an edge case than wrongly prune it.
func (g *cycleGuard) enter(path string) bool {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		real = path
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.seen[real]; ok {
		return false
	}

	g.seen[real] = struct{}{}

	return true
}
