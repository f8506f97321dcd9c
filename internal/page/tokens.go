package page

import (
	"regexp"
	"strings"
)

// skipTags are the elements whose entire subtree is exempt from
// translation. Code samples, styles, scripts, and embedded SVG/MathML
// must reach the browser untouched.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"pre":      true,
	"code":     true,
	"textarea": true,
	"svg":      true,
	"math":     true,
}

var (
	tagRe      = regexp.MustCompile(`<[^>]+>`)
	startTagRe = regexp.MustCompile(`^<\s*([a-zA-Z0-9:_-]+)`)
	endTagRe   = regexp.MustCompile(`^<\s*/\s*([a-zA-Z0-9:_-]+)`)

	urlRe       = regexp.MustCompile(`(?i)^(https?:|mailto:|tel:|www\.)`)
	hasLetterRe = regexp.MustCompile(`[A-Za-zÀ-ž]`)
)

// Token is one element of a tokenized HTML document: either a tag
// (everything from < to >) or the raw text between tags.
type Token struct {
	// IsTag marks tag tokens. Text tokens carry raw (still escaped)
	// character data.
	IsTag bool

	// Raw is the exact source slice; concatenating all Raw fields
	// reproduces the input byte-for-byte.
	Raw string
}

// Tokenize splits an HTML document into an alternating sequence of text
// and tag tokens. No validation is performed — malformed markup passes
// through as text, which is exactly what the round-trip guarantee needs.
func Tokenize(src string) []Token {
	var tokens []Token
	last := 0

	for _, loc := range tagRe.FindAllStringIndex(src, -1) {
		if loc[0] > last {
			tokens = append(tokens, Token{Raw: src[last:loc[0]]})
		}
		tokens = append(tokens, Token{IsTag: true, Raw: src[loc[0]:loc[1]]})
		last = loc[1]
	}
	if last < len(src) {
		tokens = append(tokens, Token{Raw: src[last:]})
	}
	return tokens
}

// Render concatenates tokens back into a document.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}

// tagKind classifies a tag token.
type tagKind int

const (
	tagOther tagKind = iota // comments, doctype, processing instructions
	tagStart
	tagEnd
)

// parseTag returns the kind and lowercase name of a tag token.
// Comments, doctype declarations, and processing instructions report
// tagOther with an empty name.
func parseTag(token string) (tagKind, string) {
	if strings.HasPrefix(token, "<!--") || strings.HasPrefix(token, "<!") || strings.HasPrefix(token, "<?") {
		return tagOther, ""
	}
	if m := endTagRe.FindStringSubmatch(token); m != nil {
		return tagEnd, strings.ToLower(m[1])
	}
	if m := startTagRe.FindStringSubmatch(token); m != nil {
		return tagStart, strings.ToLower(m[1])
	}
	return tagOther, ""
}

// isSelfClosing reports whether a start tag token closes itself
// (`<svg ... />`), in which case it must not push onto the skip stack.
func isSelfClosing(token string) bool {
	return strings.HasSuffix(strings.TrimRight(token, " \t\r\n"), "/>")
}

// ShouldTranslate decides whether a piece of already-unescaped text is
// worth sending to the translator: non-empty, not a bare URL, not a
// template expression, and containing at least one letter.
func ShouldTranslate(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	if urlRe.MatchString(t) {
		return false
	}
	if strings.HasPrefix(t, "{{") && strings.HasSuffix(t, "}}") {
		return false
	}
	return hasLetterRe.MatchString(t)
}

// SplitWS splits text into its leading whitespace, core, and trailing
// whitespace. Translation touches only the core; the whitespace is
// significant for inline layout and is reattached verbatim.
func SplitWS(text string) (lead, core, trail string) {
	start := 0
	for start < len(text) && isSpace(text[start]) {
		start++
	}
	end := len(text)
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return text[:start], text[start:end], text[end:]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
