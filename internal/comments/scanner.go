package comments

import "strings"

// Span is one comment found in a piece of C++ source. Start and End are
// byte offsets of the comment body: past the // or /* opener, before the
// */ closer.
type Span struct {
	Start int
	End   int

	// Block marks /* */ comments; false means a // line comment.
	Block bool
}

// FindCommentSpans lexes C++ source just enough to locate comments.
// Double-quoted strings, character literals (with backslash escapes),
// and raw string literals R"delim(...)delim" are skipped so their
// contents can never be mistaken for comment openers. An unterminated
// block comment runs to the end of the source.
func FindCommentSpans(code string) []Span {
	var spans []Span
	i, n := 0, len(code)

	for i < n {
		switch {
		case strings.HasPrefix(code[i:], "//"):
			start := i + 2
			j := start
			for j < n && code[j] != '\r' && code[j] != '\n' {
				j++
			}
			spans = append(spans, Span{Start: start, End: j})
			i = j

		case strings.HasPrefix(code[i:], "/*"):
			start := i + 2
			if rel := strings.Index(code[start:], "*/"); rel >= 0 {
				spans = append(spans, Span{Start: start, End: start + rel, Block: true})
				i = start + rel + 2
			} else {
				spans = append(spans, Span{Start: start, End: n, Block: true})
				i = n
			}

		case code[i] == '"':
			i = skipQuoted(code, i+1, '"')

		case code[i] == '\'':
			i = skipQuoted(code, i+1, '\'')

		case code[i] == 'R' && i+1 < n && code[i+1] == '"':
			i = skipRawString(code, i)

		default:
			i++
		}
	}
	return spans
}

// skipQuoted advances past a quoted literal body starting at i, honoring
// backslash escapes. Returns the index just past the closing quote, or
// len(code) if the literal never closes.
func skipQuoted(code string, i int, quote byte) int {
	n := len(code)
	for i < n {
		switch code[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return n
}

// skipRawString advances past a raw string literal starting at the R.
// A malformed raw string (no opening paren, or no matching closer) is
// treated as ordinary source: only the R is consumed.
func skipRawString(code string, i int) int {
	dstart := i + 2
	rel := strings.IndexByte(code[dstart:], '(')
	if rel < 0 {
		return i + 1
	}
	delim := code[dstart : dstart+rel]
	closePat := ")" + delim + `"`

	bodyStart := dstart + rel + 1
	if rel := strings.Index(code[bodyStart:], closePat); rel >= 0 {
		return bodyStart + rel + len(closePat)
	}
	return i + 1
}
