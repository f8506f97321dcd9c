package translate

import (
	"context"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/logger"
)

// Options tunes the cache-first translation flow.
type Options struct {
	// MaxLen caps the encoded payload length of a batch. Zero means 3800,
	// comfortably under the endpoint's query-size limit.
	MaxLen int

	// Fixup, when set, is applied to every translation before it is
	// judged and cached (postprocess rules, glossary terms).
	Fixup func(string) string

	// Reject, when set, marks a translation as unusable. Rejected batch
	// results are retried per-string; a per-string result that is still
	// rejected falls back through Fallback, then keeps the last candidate.
	Reject func(source, translation string) bool

	// Fallback is an alternate translator (typically the same endpoint
	// with source language "auto") tried when the primary's per-string
	// result is rejected.
	Fallback Translator
}

// TranslateMissing fills the cache for every text not already present.
//
// Texts found in the store are untouched. Misses are packed into marker
// batches; a batch whose response cannot be decoded degrades to
// per-string translation. A string that cannot be translated at all is
// cached as itself so the pipeline makes progress and a later run with a
// purged cache can retry it.
func TranslateMissing(ctx context.Context, texts []string, store cache.Store, tr Translator, opts Options) error {
	if opts.MaxLen == 0 {
		opts.MaxLen = 3800
	}

	var missing []Item
	for i, t := range texts {
		_, ok, err := store.Get(ctx, t)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, Item{Index: i, Text: t})
		}
	}
	if len(missing) == 0 {
		return nil
	}

	logger.Debug().Int("missing", len(missing)).Msg("translating cache misses")

	for _, batch := range BuildBatches(missing, opts.MaxLen) {
		vals := make([]string, len(batch))
		for i, item := range batch {
			vals[i] = item.Text
		}

		translated := translateBatch(ctx, vals, tr, opts)
		for i, item := range batch {
			if err := store.Put(ctx, item.Text, translated[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// translateBatch translates one batch, degrading from the marker payload
// to per-string requests as needed. The returned slice always has
// len(vals) entries.
func translateBatch(ctx context.Context, vals []string, tr Translator, opts Options) []string {
	payload := EncodeBatch(vals)

	if raw, err := tr.Translate(ctx, payload); err == nil {
		if parts, ok := DecodeBatch(raw, len(vals)); ok {
			out := make([]string, len(vals))
			for i, part := range parts {
				cand := applyFixup(part, opts)
				if opts.Reject != nil && opts.Reject(vals[i], cand) {
					cand = translateOne(ctx, vals[i], tr, opts)
				}
				out[i] = cand
			}
			return out
		}
		logger.Debug().Int("size", len(vals)).Msg("batch markers lost, retrying per string")
	} else {
		logger.Warn().Err(err).Int("size", len(vals)).Msg("batch translation failed, retrying per string")
	}

	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = translateOne(ctx, v, tr, opts)
	}
	return out
}

// translateOne translates a single string through the primary translator
// and, when the result is rejected, the fallback. The last candidate
// (ultimately the source itself) is returned when nothing acceptable
// comes back.
func translateOne(ctx context.Context, text string, tr Translator, opts Options) string {
	last := text

	translators := []Translator{tr}
	if opts.Fallback != nil {
		translators = append(translators, opts.Fallback)
	}

	for _, t := range translators {
		cand, err := t.Translate(ctx, text)
		if err != nil {
			logger.Warn().Err(err).Msg("translation failed")
			continue
		}
		cand = applyFixup(cand, opts)
		if opts.Reject == nil || !opts.Reject(text, cand) {
			return cand
		}
		last = cand
	}
	return last
}

func applyFixup(s string, opts Options) string {
	if opts.Fixup != nil {
		return opts.Fixup(s)
	}
	return s
}
