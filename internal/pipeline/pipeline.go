// Package pipeline fans out internal/counter across every resolved
// file with an errgroup-bounded worker pool, deduplicating by content
// hash, and reduces the results into a model.Summary.
package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/loclens/loclens/internal/counter"
	"github.com/loclens/loclens/internal/filter"
	"github.com/loclens/loclens/internal/model"
)

// Options tunes the pipeline's scheduling and dedup behavior.
type Options struct {
	// Parallelism is the worker pool size; 0 selects runtime.NumCPU().
	Parallelism int
	// NoDedup disables content-hash deduplication.
	NoDedup bool
	Logger  *slog.Logger
}

func (o Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Run scans every entry in parallel and reduces the results. An empty
// (post-filter) entry set is reported as model.NewNoSourceFiles, per
// §7.
func Run(ctx context.Context, entries []filter.Resolved, opts Options) (model.Summary, error) {
	if len(entries) == 0 {
		return model.Summary{}, model.NewNoSourceFiles()
	}

	start := time.Now()
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var seen sync.Map // uint64 hash -> struct{}
	var mu sync.Mutex
	var stats []model.FileStats

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			default:
			}

			if !opts.NoDedup {
				hash, err := counter.ContentHash(entry.Path)
				if err != nil {
					opts.log().Debug("content hash failed, scanning anyway", "path", entry.Path, "error", err)
				} else if _, dup := seen.LoadOrStore(hash, struct{}{}); dup {
					return nil
				}
			}

			fs, err := counter.Count(entry.Path, entry.Ruleset)
			if err != nil {
				opts.log().Debug("skipping unreadable file", "path", entry.Path, "error", err)
				return nil
			}

			mu.Lock()
			stats = append(stats, fs)
			mu.Unlock()
			return nil
		})
	}

	// per-file tasks never return a non-nil error (§5: per-file errors
	// are never fatal), so Wait returns nil; a cancelled ctx only makes
	// the tasks not yet started return early
	if err := g.Wait(); err != nil {
		return model.Summary{}, err
	}

	elapsed := time.Since(start).Milliseconds()
	return model.Reduce(stats, elapsed), nil
}
