// Package cli — pipeline.go holds the plumbing shared by the translate,
// comments, and cleanup subcommands: configuration and logger setup,
// cache store selection, translator construction, and result printing.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/config"
	"github.com/cpp-samouczek/lcpp/internal/logger"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// setupPipeline loads configuration and initializes logging for a
// pipeline subcommand. --verbose lowers the log level to debug
// regardless of LCPP_LOG_LEVEL.
func setupPipeline() *config.Config {
	cfg := config.Load()
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger.Init(logger.Config{Level: level, Pretty: cfg.LogPretty})
	return cfg
}

// openStore selects and opens the translation cache: Redis when a URL is
// given (--redis flag wins over LCPP_REDIS_URL), the JSON file store
// otherwise.
func openStore(cfg *config.Config, redisURL, cachePath string) (cache.Store, error) {
	url := redisURL
	if url == "" {
		url = cfg.RedisURL
	}
	if url != "" {
		store, err := cache.NewRedisStore(url, cfg.RedisPrefix)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitCacheError, "failed to open Redis cache", err)
		}
		VerboseLog("Using Redis cache at %s", url)
		return store, nil
	}

	store, err := cache.NewFileStore(cachePath)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitCacheError, "failed to open cache file", err)
	}
	VerboseLog("Using cache file %s", cachePath)
	return store, nil
}

// closeStore flushes and closes the store, logging rather than failing:
// by the time we close, the run's result is already decided.
func closeStore(ctx context.Context, store cache.Store) {
	if err := store.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to close translation cache")
	}
}

// newTranslator builds the translation client for the configured
// language pair, with an optional source-language override.
func newTranslator(cfg *config.Config, source string) (*translate.GoogleClient, error) {
	if source == "" {
		source = cfg.SourceLang
	}
	pair := model.LangPair{Source: source, Target: cfg.TargetLang}
	if err := pair.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "invalid language configuration", err)
	}

	VerboseLog("Translator: %s", pair)
	return translate.NewGoogleClient(pair, translate.ClientOptions{
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	}), nil
}

// loadGlossary loads the optional glossary file. An empty path yields a
// nil glossary, which Apply treats as a no-op.
func loadGlossary(path string) (*translate.Glossary, error) {
	if path == "" {
		return nil, nil
	}
	g, err := translate.LoadGlossary(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to load glossary", err)
	}
	VerboseLog("Glossary: %d terms", g.Len())
	return g, nil
}

// printStats outputs a pipeline run summary in text or JSON format.
func printStats(command string, stats model.TreeStats) {
	if IsJSONOutput() {
		result := struct {
			Command string `json:"command"`
			model.TreeStats
		}{Command: command, TreeStats: stats}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}
	fmt.Printf("DONE %s\n", stats)
}
