package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize_RoundTrip verifies that rendering the token stream
// reproduces the input byte-for-byte, malformed markup included.
func TestTokenize_RoundTrip(t *testing.T) {
	docs := []string{
		`<p>Hello <b>world</b></p>`,
		`text only`,
		`<br/><br/>`,
		`<!-- comment --><!DOCTYPE html><?xml version="1.0"?>`,
		`broken < not a tag`,
		`<div class="a&amp;b">x &lt; y</div>`,
		"",
	}

	for _, doc := range docs {
		assert.Equal(t, doc, Render(Tokenize(doc)), "round trip failed for %q", doc)
	}
}

// TestTokenize_Alternation verifies the tag/text classification.
func TestTokenize_Alternation(t *testing.T) {
	tokens := Tokenize(`<p>Hello</p>`)
	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].IsTag)
	assert.False(t, tokens[1].IsTag)
	assert.Equal(t, "Hello", tokens[1].Raw)
	assert.True(t, tokens[2].IsTag)
}

// TestParseTag verifies start/end/other classification and lowercase
// names.
func TestParseTag(t *testing.T) {
	cases := []struct {
		token string
		kind  tagKind
		name  string
	}{
		{`<p>`, tagStart, "p"},
		{`<DIV class="x">`, tagStart, "div"},
		{`</p>`, tagEnd, "p"},
		{`< / code >`, tagEnd, "code"},
		{`<!-- hi -->`, tagOther, ""},
		{`<!DOCTYPE html>`, tagOther, ""},
		{`<?php ?>`, tagOther, ""},
	}

	for _, c := range cases {
		kind, name := parseTag(c.token)
		assert.Equal(t, c.kind, kind, "kind of %q", c.token)
		assert.Equal(t, c.name, name, "name of %q", c.token)
	}
}

// TestIsSelfClosing verifies that self-closing start tags are detected,
// trailing whitespace included.
func TestIsSelfClosing(t *testing.T) {
	assert.True(t, isSelfClosing(`<svg viewBox="0 0 1 1"/>`))
	assert.True(t, isSelfClosing("<br/> \n"))
	assert.False(t, isSelfClosing(`<svg>`))
}

// TestShouldTranslate covers the filters that keep URLs, template
// expressions, and symbol-only fragments away from the translator.
func TestShouldTranslate(t *testing.T) {
	yes := []string{
		"Hello world",
		"  padded  ",
		"Witaj świecie",
		"C++ is fun",
	}
	for _, s := range yes {
		assert.True(t, ShouldTranslate(s), "%q should be translatable", s)
	}

	no := []string{
		"",
		"   ",
		"https://example.com/page",
		"mailto:someone@example.com",
		"tel:+48123456789",
		"www.learncpp.com",
		"{{ lesson.title }}",
		"-> :: ;",
		"12345",
	}
	for _, s := range no {
		assert.False(t, ShouldTranslate(s), "%q should be skipped", s)
	}
}

// TestSplitWS verifies whitespace splitting around the translatable
// core.
func TestSplitWS(t *testing.T) {
	lead, core, trail := SplitWS("\n  Hello world \t")
	assert.Equal(t, "\n  ", lead)
	assert.Equal(t, "Hello world", core)
	assert.Equal(t, " \t", trail)

	lead, core, trail = SplitWS("solid")
	assert.Equal(t, "", lead)
	assert.Equal(t, "solid", core)
	assert.Equal(t, "", trail)

	lead, core, trail = SplitWS("   ")
	assert.Equal(t, "   ", lead)
	assert.Equal(t, "", core)
	assert.Equal(t, "", trail)
}
