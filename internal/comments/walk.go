package comments

import (
	"context"
	"sort"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/logger"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/page"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// Progress cadences. Scanning is cheap, rewriting touches disk and the
// cache, so they log at different rates.
const (
	scanEvery  = 40
	writeEvery = 25
)

// WalkOptions configures a TranslateTree run over code comments.
type WalkOptions struct {
	// Limit truncates the sorted file list when positive.
	Limit int

	// Translate tunes the batched translation flow.
	Translate translate.Options
}

// enumerable is implemented by stores that can list their entries; the
// stale purge needs it and silently skips stores that cannot.
type enumerable interface {
	Entries() map[string]string
}

// PurgeStale deletes cached translations that no longer pass the quality
// bar. Heuristics tighten over time; purging lets the next run redo what
// an older run let through.
func PurgeStale(ctx context.Context, store cache.Store) (int, error) {
	en, ok := store.(enumerable)
	if !ok {
		return 0, nil
	}

	purged := 0
	for src, tr := range en.Entries() {
		if IsBadTranslation(src, tr) {
			if err := store.Delete(ctx, src); err != nil {
				return purged, err
			}
			purged++
		}
	}
	if purged > 0 {
		logger.Info().Int("purged", purged).Msg("dropped stale cache entries")
	}
	return purged, nil
}

// TranslateTree translates the code comments of every HTML file under
// root and returns run statistics.
//
// The run has three phases: purge stale cache entries, scan all files to
// collect missing comment cores, then translate the misses in batches
// and rewrite the files. Collecting everything up front keeps the
// translation requests maximally packed.
func TranslateTree(ctx context.Context, root string, store cache.Store, tr translate.Translator, opts WalkOptions) (model.TreeStats, error) {
	var stats model.TreeStats

	files, err := page.ListHTML(root)
	if err != nil {
		return stats, err
	}
	if opts.Limit > 0 && len(files) > opts.Limit {
		files = files[:opts.Limit]
	}
	stats.Files = len(files)

	if _, err := PurgeStale(ctx, store); err != nil {
		return stats, model.WrapCLIError(model.ExitCacheError, "failed to purge stale cache entries", err)
	}

	missing := make(map[string]bool)
	for i, f := range files {
		err := CollectFile(f, func(core string) {
			missing[core] = true
		})
		if err != nil {
			stats.Errors++
			logger.Error().Err(err).Str("file", f).Msg("failed to scan page")
		}
		if (i+1)%scanEvery == 0 || i+1 == len(files) {
			logger.Info().
				Int("done", i+1).
				Int("total", len(files)).
				Int("missing", len(missing)).
				Msg("scan progress")
		}
	}

	if len(missing) > 0 {
		cores := make([]string, 0, len(missing))
		for core := range missing {
			cores = append(cores, core)
		}
		sort.Strings(cores)

		if err := translate.TranslateMissing(ctx, cores, store, tr, opts.Translate); err != nil {
			return stats, err
		}
		if err := store.Flush(ctx); err != nil {
			return stats, model.WrapCLIError(model.ExitCacheError, "failed to flush translation cache", err)
		}
		logger.Info().Int("missing", len(cores)).Int("cache", store.Len(ctx)).Msg("translated missing comments")
	}

	lookup := func(core string) (string, bool) {
		v, ok, err := store.Get(ctx, core)
		if err != nil || !ok {
			return "", false
		}
		return v, true
	}

	for i, f := range files {
		changed, err := ProcessFile(f, lookup)
		if err != nil {
			stats.Errors++
			logger.Error().Err(err).Str("file", f).Msg("failed to rewrite page")
		} else if changed {
			stats.Changed++
		}

		if (i+1)%writeEvery == 0 || i+1 == len(files) {
			if err := store.Flush(ctx); err != nil {
				return stats, model.WrapCLIError(model.ExitCacheError, "failed to flush translation cache", err)
			}
			logger.Info().
				Int("done", i+1).
				Int("total", len(files)).
				Int("changed", stats.Changed).
				Msg("rewrite progress")
		}
	}

	if err := store.Flush(ctx); err != nil {
		return stats, model.WrapCLIError(model.ExitCacheError, "failed to flush translation cache", err)
	}
	stats.CacheSize = store.Len(ctx)
	return stats, nil
}
