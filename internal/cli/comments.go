// Package cli — comments.go implements the "lcpp comments" command,
// which translates English comments inside the mirrored C++ samples.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/comments"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// commentsFlags holds the flag values for the comments command.
type commentsFlags struct {
	root      string // --root: mirror tree to process
	cache     string // --cache: JSON translation cache file
	seedCache string // --seed-cache: read-only warm cache merged at start
	limit     int    // --limit: process only the first N files
	glossary  string // --glossary: YAML forced-terms file
	redis     string // --redis: Redis URL overriding the file cache
}

// NewCommentsCommand creates the "comments" cobra command.
func NewCommentsCommand() *cobra.Command {
	flags := &commentsFlags{}

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Translate C++ code comments on mirrored pages",
		Long: `Translate the English comments inside <code> blocks of every HTML page
under --root. Code itself is never touched: a small C++ lexer locates
comment spans, heuristics decide which comments are English prose, and
only those are translated.

The run is two-phase: all files are scanned first to collect missing
comments, the misses are translated in batches, then files are rewritten
from the cache. Stale low-quality cache entries are purged before the
scan so they get retranslated.

Examples:
  lcpp comments --root ./www.learncpp.com --cache comments-cache.json
  lcpp comments --root ./www.learncpp.com --cache comments-cache.json --seed-cache tr-cache.json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runComments(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Mirror tree to process (required)")
	cmd.Flags().StringVar(&flags.cache, "cache", "", "Translation cache file (required unless --redis)")
	cmd.Flags().StringVar(&flags.seedCache, "seed-cache", "", "Read-only warm cache merged at start (file cache only)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Process only the first N files")
	cmd.Flags().StringVar(&flags.glossary, "glossary", "", "YAML glossary of forced term replacements")
	cmd.Flags().StringVar(&flags.redis, "redis", "", "Redis URL to use instead of the file cache")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

// runComments is the orchestration function for the comments command.
func runComments(ctx context.Context, flags *commentsFlags) error {
	cfg := setupPipeline()

	if flags.cache == "" && flags.redis == "" && cfg.RedisURL == "" {
		return model.NewCLIError(model.ExitGeneralError, "either --cache or --redis (or LCPP_REDIS_URL) is required")
	}

	store, err := openStore(cfg, flags.redis, flags.cache)
	if err != nil {
		return err
	}
	defer closeStore(ctx, store)

	if flags.seedCache != "" {
		fs, ok := store.(*cache.FileStore)
		if !ok {
			return model.NewCLIError(model.ExitGeneralError, "--seed-cache requires the file cache")
		}
		if err := fs.Seed(flags.seedCache); err != nil {
			return model.WrapCLIError(model.ExitCacheError, "failed to load seed cache", err)
		}
		VerboseLog("Seeded cache from %s", flags.seedCache)
	}

	// Comments translate with automatic source detection first: many are
	// mixed English and identifiers, which detection handles better. A
	// rejected result is retried with the fixed source language.
	primary, err := newTranslator(cfg, "auto")
	if err != nil {
		return err
	}
	fallback, err := newTranslator(cfg, "en")
	if err != nil {
		return err
	}

	glossary, err := loadGlossary(flags.glossary)
	if err != nil {
		return err
	}

	stats, err := comments.TranslateTree(ctx, flags.root, store, primary, comments.WalkOptions{
		Limit: flags.limit,
		Translate: translate.Options{
			MaxLen: cfg.BatchMaxLen,
			Fixup: func(s string) string {
				return glossary.Apply(comments.Postprocess(s))
			},
			Reject:   comments.IsBadTranslation,
			Fallback: fallback,
		},
	})
	if err != nil {
		if _, ok := err.(*model.CLIError); ok {
			return err
		}
		return model.WrapCLIError(model.ExitTranslationFailed, "comment translation run failed", err)
	}

	printStats("comments", stats)
	return nil
}
