package comments

import (
	"html"
	"os"
	"regexp"
	"strings"
)

var (
	codeRe       = regexp.MustCompile(`(?is)(<code\b[^>]*>)(.*?)(</code>)`)
	blockDecorRe = regexp.MustCompile(`^(\s*\*+\s?)(.*)$`)
)

// Lookup resolves a comment core to its cached translation.
type Lookup func(core string) (string, bool)

// lineSeg is one line of a block comment, with its line ending kept
// separate so translation can never disturb it.
type lineSeg struct {
	raw string
	end string
}

func splitLines(s string) []lineSeg {
	var segs []lineSeg
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			segs = append(segs, lineSeg{raw: s[start:i], end: "\n"})
			start = i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				segs = append(segs, lineSeg{raw: s[start:i], end: "\r\n"})
				i++
			} else {
				segs = append(segs, lineSeg{raw: s[start:i], end: "\r"})
			}
			start = i + 1
		}
	}
	if start < len(s) {
		segs = append(segs, lineSeg{raw: s[start:], end: ""})
	}
	return segs
}

// splitWS splits text into leading whitespace, core, and trailing
// whitespace.
func splitWS(text string) (lead, core, trail string) {
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

// commentBody strips the `*` decoration column of a block comment line,
// returning the decoration prefix and the body.
func commentBody(line string) (prefix, body string) {
	if m := blockDecorRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2]
	}
	return "", line
}

// CollectUnits visits every translatable comment core inside a piece of
// C++ source. Multi-line block comments contribute one unit per line so
// the decoration column and line structure survive translation.
func CollectUnits(code string, visit func(core string)) {
	for _, span := range FindCommentSpans(code) {
		content := code[span.Start:span.End]

		if span.Block && strings.ContainsAny(content, "\r\n") {
			for _, seg := range splitLines(content) {
				_, body := commentBody(seg.raw)
				_, core, _ := splitWS(body)
				if ShouldTranslateComment(core) {
					visit(core)
				}
			}
			continue
		}

		_, core, _ := splitWS(content)
		if ShouldTranslateComment(core) {
			visit(core)
		}
	}
}

// translateBody rewrites one comment body from the cache. A core that
// fails the translation filter, or has no cached translation, is left
// alone.
func translateBody(body string, lookup Lookup) string {
	lead, core, trail := splitWS(body)
	if !ShouldTranslateComment(core) {
		return body
	}
	tr, ok := lookup(core)
	if !ok {
		return body
	}
	return lead + tr + trail
}

// rewriteContent translates one comment's content, line by line for
// multi-line block comments.
func rewriteContent(content string, block bool, lookup Lookup) string {
	if !block || !strings.ContainsAny(content, "\r\n") {
		return translateBody(content, lookup)
	}

	var b strings.Builder
	for _, seg := range splitLines(content) {
		prefix, body := commentBody(seg.raw)
		b.WriteString(prefix)
		b.WriteString(translateBody(body, lookup))
		b.WriteString(seg.end)
	}
	return b.String()
}

// RewriteComments translates every comment span in a piece of C++
// source. Spans are rewritten back to front so earlier offsets stay
// valid.
func RewriteComments(code string, lookup Lookup) (string, bool) {
	spans := FindCommentSpans(code)
	if len(spans) == 0 {
		return code, false
	}

	updated := code
	changed := false
	for i := len(spans) - 1; i >= 0; i-- {
		span := spans[i]
		old := updated[span.Start:span.End]
		if next := rewriteContent(old, span.Block, lookup); next != old {
			updated = updated[:span.Start] + next + updated[span.End:]
			changed = true
		}
	}
	return updated, changed
}

// codeEscaper re-escapes rewritten code for embedding in HTML. Quotes
// stay literal, matching how the mirror pages were generated.
var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// CollectFile visits every translatable comment core in the <code>
// elements of one HTML file.
func CollectFile(path string, visit func(core string)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, m := range codeRe.FindAllStringSubmatch(string(data), -1) {
		CollectUnits(html.UnescapeString(m[2]), visit)
	}
	return nil
}

// ProcessFile rewrites the comments in every <code> element of one HTML
// file in place. Returns whether the file changed.
func ProcessFile(path string, lookup Lookup) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	text := string(data)

	var b strings.Builder
	last := 0
	changed := false

	for _, m := range codeRe.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])

		prefix := text[m[2]:m[3]]
		inner := text[m[4]:m[5]]
		suffix := text[m[6]:m[7]]

		decoded := html.UnescapeString(inner)
		if rewritten, ok := RewriteComments(decoded, lookup); ok {
			inner = codeEscaper.Replace(rewritten)
			changed = true
		}

		b.WriteString(prefix)
		b.WriteString(inner)
		b.WriteString(suffix)
		last = m[1]
	}
	b.WriteString(text[last:])

	if changed {
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return false, err
		}
	}
	return changed, nil
}
