package page

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/logger"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// flushEvery is the file cadence for progress logging and cache flushes.
// A run over the full mirror takes a while; flushing along the way means
// an interrupted run loses at most a handful of translations.
const flushEvery = 10

// WalkOptions configures a TranslateTree run.
type WalkOptions struct {
	// Limit truncates the sorted file list when positive. Used for
	// incremental runs and smoke tests on a few pages.
	Limit int

	// Translate tunes the batched translation flow.
	Translate translate.Options
}

// ListHTML returns the sorted relative paths of all .html files under
// root.
func ListHTML(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TranslateTree translates every HTML file under root, cache-first, and
// returns run statistics. Per-file failures are logged and counted but
// do not abort the walk — one broken page must not strand a thousand
// good ones.
func TranslateTree(ctx context.Context, root string, store cache.Store, tr translate.Translator, opts WalkOptions) (model.TreeStats, error) {
	var stats model.TreeStats

	files, err := ListHTML(root)
	if err != nil {
		return stats, err
	}
	if opts.Limit > 0 && len(files) > opts.Limit {
		files = files[:opts.Limit]
	}
	stats.Files = len(files)

	for i, f := range files {
		changed, err := ProcessFile(ctx, f, store, tr, opts.Translate)
		if err != nil {
			stats.Errors++
			logger.Error().Err(err).Str("file", f).Msg("failed to process page")
		} else if changed {
			stats.Changed++
		}

		if (i+1)%flushEvery == 0 || i+1 == len(files) {
			if err := store.Flush(ctx); err != nil {
				return stats, model.WrapCLIError(model.ExitCacheError, "failed to flush translation cache", err)
			}
			logger.Info().
				Int("done", i+1).
				Int("total", len(files)).
				Int("changed", stats.Changed).
				Int("cache", store.Len(ctx)).
				Msg("progress")
		}
	}

	if err := store.Flush(ctx); err != nil {
		return stats, model.WrapCLIError(model.ExitCacheError, "failed to flush translation cache", err)
	}
	stats.CacheSize = store.Len(ctx)
	return stats, nil
}
