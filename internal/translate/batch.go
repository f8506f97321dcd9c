package translate

import (
	"fmt"
	"strings"
)

// endMarker terminates every batched payload. Its presence in a response
// is the first integrity check: a translation that dropped it cannot be
// split reliably and is discarded wholesale.
const endMarker = "<<<MEND>>>"

// marker returns the delimiter placed before the i-th fragment of a
// payload. The angle-bracket form survives translation services intact
// because it looks like markup, not prose.
func marker(i int) string {
	return fmt.Sprintf("<<<M%d>>>", i)
}

// Item pairs a fragment with its position in the caller's slice, so that
// batch results can be written back to the right places.
type Item struct {
	Index int
	Text  string
}

// BuildBatches greedily packs items into batches whose encoded payload
// length (markers included) stays at or below maxLen. A single oversized
// item still gets its own batch — the per-string fallback will handle it
// if the service rejects the long payload.
func BuildBatches(items []Item, maxLen int) [][]Item {
	var batches [][]Item
	var current []Item
	currentLen := len(endMarker)

	for _, item := range items {
		extra := len(marker(len(current))) + len(item.Text)
		if len(current) > 0 && currentLen+extra > maxLen {
			batches = append(batches, current)
			current = nil
			currentLen = len(endMarker)
			extra = len(marker(0)) + len(item.Text)
		}
		current = append(current, item)
		currentLen += extra
	}

	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}

// EncodeBatch joins texts into a single marker-delimited payload:
//
//	<<<M0>>>first<<<M1>>>second<<<MEND>>>
func EncodeBatch(texts []string) string {
	var b strings.Builder
	for i, t := range texts {
		b.WriteString(marker(i))
		b.WriteString(t)
	}
	b.WriteString(endMarker)
	return b.String()
}

// DecodeBatch splits a translated payload back into n fragments.
//
// Returns ok=false when any marker is missing or out of order — the
// translation service occasionally rewrites or drops markers, and a
// payload that cannot be split exactly is worthless.
func DecodeBatch(translated string, n int) ([]string, bool) {
	if !strings.Contains(translated, endMarker) {
		return nil, false
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		cur := marker(i)
		next := endMarker
		if i+1 < n {
			next = marker(i + 1)
		}

		start := strings.Index(translated, cur)
		if start == -1 {
			return nil, false
		}
		start += len(cur)

		end := strings.Index(translated[start:], next)
		if end == -1 {
			return nil, false
		}
		out = append(out, translated[start:start+end])
	}
	return out, true
}
