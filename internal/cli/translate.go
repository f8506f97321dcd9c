// Package cli — translate.go implements the "lcpp translate" command,
// which machine-translates the prose of every mirrored HTML page.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/page"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// translateFlags holds the flag values for the translate command.
type translateFlags struct {
	root     string // --root: mirror tree to translate
	cache    string // --cache: JSON translation cache file
	limit    int    // --limit: process only the first N files
	glossary string // --glossary: YAML forced-terms file
	redis    string // --redis: Redis URL overriding the file cache
}

// NewTranslateCommand creates the "translate" cobra command.
func NewTranslateCommand() *cobra.Command {
	flags := &translateFlags{}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate mirrored HTML pages to Polish",
		Long: `Translate the text content of every HTML page under --root: text nodes
outside code/script subtrees, plus title, alt, and placeholder attributes.

Translations are cached by source string, so reruns only pay for new or
purged entries. Files are rewritten in place, and only when their content
actually changed.

Examples:
  lcpp translate --root ./www.learncpp.com --cache tr-cache.json
  lcpp translate --root ./www.learncpp.com --cache tr-cache.json --limit 20
  lcpp translate --root ./www.learncpp.com --cache tr-cache.json --glossary terms.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Mirror tree to translate (required)")
	cmd.Flags().StringVar(&flags.cache, "cache", "", "Translation cache file (required unless --redis)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Process only the first N files")
	cmd.Flags().StringVar(&flags.glossary, "glossary", "", "YAML glossary of forced term replacements")
	cmd.Flags().StringVar(&flags.redis, "redis", "", "Redis URL to use instead of the file cache")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

// runTranslate is the orchestration function for the translate command.
func runTranslate(ctx context.Context, flags *translateFlags) error {
	cfg := setupPipeline()

	if flags.cache == "" && flags.redis == "" && cfg.RedisURL == "" {
		return model.NewCLIError(model.ExitGeneralError, "either --cache or --redis (or LCPP_REDIS_URL) is required")
	}

	store, err := openStore(cfg, flags.redis, flags.cache)
	if err != nil {
		return err
	}
	defer closeStore(ctx, store)

	tr, err := newTranslator(cfg, "")
	if err != nil {
		return err
	}

	glossary, err := loadGlossary(flags.glossary)
	if err != nil {
		return err
	}

	stats, err := page.TranslateTree(ctx, flags.root, store, tr, page.WalkOptions{
		Limit: flags.limit,
		Translate: translate.Options{
			MaxLen: cfg.BatchMaxLen,
			Fixup:  glossary.Apply,
		},
	})
	if err != nil {
		if _, ok := err.(*model.CLIError); ok {
			return err
		}
		return model.WrapCLIError(model.ExitTranslationFailed, "translation run failed", err)
	}

	printStats("translate", stats)
	return nil
}
