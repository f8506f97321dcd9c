package page

import (
	"context"
	"html"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/cpp-samouczek/lcpp/internal/cache"
	"github.com/cpp-samouczek/lcpp/internal/translate"
)

// attrRe matches the translatable attributes inside a tag token. Two
// quoting alternatives stand in for a backreference, which RE2 does not
// support: group 3 holds a double-quoted value, group 4 a single-quoted
// one.
var attrRe = regexp.MustCompile(`(?is)\b(title|alt|placeholder)\s*=\s*("([^"]*)"|'([^']*)')`)

// textEntry records a translatable text token: its token index and the
// whitespace-split, unescaped core.
type textEntry struct {
	tokenIdx          int
	lead, core, trail string
}

// attrEntry records a translatable attribute value inside a tag token:
// the byte span of the raw value within the token and its unescaped
// form.
type attrEntry struct {
	tokenIdx   int
	start, end int
	value      string
}

// ProcessFile translates one HTML file in place. Returns whether the
// file changed.
//
// The pass works in three phases, mirroring how the mirror has always
// been maintained: collect every translatable unit, fill the cache for
// the misses in batched requests, then rewrite tokens from the cache.
func ProcessFile(ctx context.Context, path string, store cache.Store, tr translate.Translator, opts translate.Options) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	tokens := Tokenize(string(data))
	texts, attrs := collectEntries(tokens)
	if len(texts) == 0 && len(attrs) == 0 {
		return false, nil
	}

	toTranslate := make([]string, 0, len(texts)+len(attrs))
	for _, e := range texts {
		toTranslate = append(toTranslate, e.core)
	}
	for _, e := range attrs {
		toTranslate = append(toTranslate, e.value)
	}
	if err := translate.TranslateMissing(ctx, toTranslate, store, tr, opts); err != nil {
		return false, err
	}

	changed := applyText(ctx, tokens, texts, store)
	if applyAttrs(ctx, tokens, attrs, store) {
		changed = true
	}

	if changed {
		if err := os.WriteFile(path, []byte(Render(tokens)), 0o644); err != nil {
			return false, err
		}
	}
	return changed, nil
}

// collectEntries walks the token stream once, tracking the skip-tag
// stack, and gathers translatable text cores and attribute values.
func collectEntries(tokens []Token) ([]textEntry, []attrEntry) {
	var texts []textEntry
	var attrs []attrEntry
	var skipStack []string

	for idx, token := range tokens {
		if token.IsTag {
			kind, name := parseTag(token.Raw)

			if kind == tagStart && skipTags[name] && !isSelfClosing(token.Raw) {
				skipStack = append(skipStack, name)
			} else if kind == tagEnd && len(skipStack) > 0 && name == skipStack[len(skipStack)-1] {
				skipStack = skipStack[:len(skipStack)-1]
			}

			// Attributes on the skip tag itself (e.g. a title on <pre>)
			// are also left alone; only tags outside skipped subtrees
			// contribute.
			if len(skipStack) == 0 {
				for _, m := range attrRe.FindAllStringSubmatchIndex(token.Raw, -1) {
					// Group 3 is the double-quoted value span, group 4
					// the single-quoted one; exactly one matched.
					start, end := m[6], m[7]
					if start < 0 {
						start, end = m[8], m[9]
					}
					value := html.UnescapeString(token.Raw[start:end])
					if ShouldTranslate(value) {
						attrs = append(attrs, attrEntry{tokenIdx: idx, start: start, end: end, value: value})
					}
				}
			}
			continue
		}

		if len(skipStack) > 0 {
			continue
		}

		decoded := html.UnescapeString(token.Raw)
		if !ShouldTranslate(decoded) {
			continue
		}
		lead, core, trail := SplitWS(decoded)
		if !ShouldTranslate(core) {
			continue
		}
		texts = append(texts, textEntry{tokenIdx: idx, lead: lead, core: core, trail: trail})
	}
	return texts, attrs
}

// applyText rewrites translated text tokens. Cache misses (which only
// happen when the service was down and the source got cached as itself)
// leave the token unchanged.
func applyText(ctx context.Context, tokens []Token, texts []textEntry, store cache.Store) bool {
	changed := false
	for _, e := range texts {
		tr, ok, err := store.Get(ctx, e.core)
		if err != nil || !ok {
			tr = e.core
		}
		newText := e.lead + escapeText(tr) + e.trail
		if tokens[e.tokenIdx].Raw != newText {
			tokens[e.tokenIdx].Raw = newText
			changed = true
		}
	}
	return changed
}

// applyAttrs rewrites translated attribute values. Edits within one tag
// token are applied right-to-left so earlier spans stay valid.
func applyAttrs(ctx context.Context, tokens []Token, attrs []attrEntry, store cache.Store) bool {
	byToken := make(map[int][]attrEntry)
	for _, e := range attrs {
		byToken[e.tokenIdx] = append(byToken[e.tokenIdx], e)
	}

	changed := false
	for idx, edits := range byToken {
		sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })

		token := tokens[idx].Raw
		newToken := token
		for _, e := range edits {
			tr, ok, err := store.Get(ctx, e.value)
			if err != nil || !ok {
				tr = e.value
			}
			newToken = newToken[:e.start] + html.EscapeString(tr) + newToken[e.end:]
		}
		if newToken != token {
			tokens[idx].Raw = newToken
			changed = true
		}
	}
	return changed
}

// escapeText escapes a translated text node. Unlike html.EscapeString it
// leaves quotes alone — they are legal in character data, and escaping
// them would rewrite every untranslated token that contains one.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
