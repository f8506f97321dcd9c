package cleanup

import (
	"os"
	"path/filepath"

	"github.com/cpp-samouczek/lcpp/internal/logger"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/page"
)

const progressEvery = 25

// Options configures a cleanup run.
type Options struct {
	// BackupRoot points at the untranslated English tree. When set, the
	// keyword list page is synced from it.
	BackupRoot string

	// Limit truncates the sorted file list when positive.
	Limit int
}

// Run applies the rule set to every HTML file under root and returns run
// statistics. Per-file failures are logged and counted but do not abort
// the walk.
func Run(root string, rules *Rules, opts Options) (model.TreeStats, error) {
	var stats model.TreeStats

	files, err := page.ListHTML(root)
	if err != nil {
		return stats, err
	}
	if opts.Limit > 0 && len(files) > opts.Limit {
		files = files[:opts.Limit]
	}
	stats.Files = len(files)

	for i, f := range files {
		changed, err := processFile(f, root, rules, opts)
		if err != nil {
			stats.Errors++
			logger.Error().Err(err).Str("file", f).Msg("failed to clean page")
		} else if changed {
			stats.Changed++
		}

		if (i+1)%progressEvery == 0 || i+1 == len(files) {
			logger.Info().
				Int("done", i+1).
				Int("total", len(files)).
				Int("changed", stats.Changed).
				Msg("progress")
		}
	}
	return stats, nil
}

func processFile(path, root string, rules *Rules, opts Options) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	original := string(data)
	updated := rules.Apply(original)

	if opts.BackupRoot != "" {
		rel, err := filepath.Rel(root, path)
		if err == nil && filepath.ToSlash(rel) == KeywordsRelPath {
			backup, err := os.ReadFile(filepath.Join(opts.BackupRoot, rel))
			if err == nil {
				updated = SyncKeywordList(updated, string(backup))
			} else if !os.IsNotExist(err) {
				return false, err
			}
		}
	}

	if updated == original {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(updated), 0o644)
}
