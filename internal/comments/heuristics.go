package comments

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordRe       = regexp.MustCompile(`[A-Za-z]{2,}`)
	urlRe        = regexp.MustCompile(`(?i)(https?://|www\.)`)
	plCharsRe    = regexp.MustCompile(`[ąćęłńóśźżĄĆĘŁŃÓŚŹŻ]`)
	mojibakeRe   = regexp.MustCompile(`(Ã.|Â.|â€™|â€œ|â€|â€“|â€”|â„¢)`)
	identCallRe  = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\s*\(`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// enHintWords are common English function words and tutorial vocabulary.
// A comment containing a couple of these is almost certainly English
// prose rather than an identifier dump.
var enHintWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"be": true, "because": true, "before": true, "both": true, "but": true,
	"call": true, "called": true, "can": true, "class": true, "copy": true,
	"create": true, "created": true, "creating": true, "destroyed": true,
	"directly": true, "does": true, "each": true, "else": true,
	"example": true, "for": true, "from": true, "function": true,
	"get": true, "here": true, "if": true, "in": true, "is": true,
	"it": true, "later": true, "legal": true, "line": true, "loop": true,
	"make": true, "name": true, "new": true, "not": true, "now": true,
	"object": true, "objects": true, "only": true, "or": true, "over": true,
	"pointer": true, "prevent": true, "print": true, "reference": true,
	"references": true, "set": true, "step": true, "still": true,
	"string": true, "that": true, "the": true, "these": true, "this": true,
	"those": true, "through": true, "to": true, "true": true, "use": true,
	"used": true, "using": true, "value": true, "values": true, "we": true,
	"when": true, "where": true, "which": true, "while": true, "with": true,
	"you": true, "your": true,
}

type fixupRule struct {
	re   *regexp.Regexp
	repl string
}

// keywordStatementRules rewrites the machine translation's literal
// rendering of "if statement" and friends ("stwierdzenie if") into the
// established Polish term "instrukcja if".
var keywordStatementRules = buildKeywordRules()

func buildKeywordRules() []fixupRule {
	var rules []fixupRule
	for _, kw := range []string{"if", "else", "switch", "while", "for"} {
		rules = append(rules,
			fixupRule{
				re:   regexp.MustCompile(`(?i)\b(?:stwierdzenie|oświadczenie)\s+` + kw + `\b`),
				repl: "instrukcja " + kw,
			},
			fixupRule{
				re:   regexp.MustCompile(`(?i)\b(?:stwierdzenia|oświadczenia)\s+` + kw + `\b`),
				repl: "instrukcje " + kw,
			})
	}
	return rules
}

// "Dead object" comes back from the service as "nie żyje" (does not
// live); the tutorial's terminology is "jest martwy". The trailing
// boundary is spelled out because \b is ASCII-only and ą is not a word
// byte to the regexp engine.
var (
	deadSingularRe = regexp.MustCompile(`(?i)\bnie żyje\b`)
	deadPluralRe   = regexp.MustCompile(`(?i)\bnie żyją(\z|[^a-zA-Ząćęłńóśźż])`)
)

// wordCount returns the number of alphabetic words and how many of them
// are English hint words.
func wordCount(text string) (hits, total int) {
	for _, w := range wordRe.FindAllString(text, -1) {
		total++
		if enHintWords[strings.ToLower(w)] {
			hits++
		}
	}
	return hits, total
}

// letterRatio is the share of letter runes in the text.
func letterRatio(text string) float64 {
	if text == "" {
		return 0
	}
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters) / float64(utf8.RuneCountInString(text))
}

// looksEnglish reports whether text reads as English prose. Any Polish
// diacritic disqualifies it immediately.
func looksEnglish(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || plCharsRe.MatchString(t) {
		return false
	}

	hits, total := wordCount(t)
	if hits >= 2 {
		return true
	}
	if total >= 6 && hits >= 1 {
		return true
	}
	return total >= 8 && hits >= 1 && letterRatio(t) > 0.55
}

// isMostlyCodeLike reports whether text is dominated by C++ syntax
// rather than prose: scope operators, braces, statement punctuation, or
// a function call.
func isMostlyCodeLike(text string) bool {
	if strings.Contains(text, "::") {
		return true
	}
	if strings.ContainsAny(text, "<>{}") {
		return true
	}
	if strings.Contains(text, ";") || strings.Contains(text, "->") {
		return true
	}
	return identCallRe.MatchString(text)
}

// ShouldTranslateComment decides whether a comment core is English prose
// worth sending to the translator. Short fragments, URLs, anything
// already Polish, and pure code snippets stay as they are.
func ShouldTranslateComment(core string) bool {
	t := strings.TrimSpace(core)
	if t == "" {
		return false
	}
	if n := utf8.RuneCountInString(t); n < 3 || n > 500 {
		return false
	}
	if urlRe.MatchString(t) || plCharsRe.MatchString(t) {
		return false
	}

	hits, total := wordCount(t)
	if total == 0 {
		return false
	}
	ratio := letterRatio(t)

	codeLike := isMostlyCodeLike(t)
	if codeLike && hits == 0 && total <= 8 {
		return false
	}
	if hits >= 1 {
		return true
	}
	if !codeLike && total >= 3 && ratio > 0.65 {
		return true
	}
	return total >= 5 && ratio > 0.55
}

// Postprocess normalizes a raw translation: established terminology for
// keyword statements and object lifetime, collapsed runs of whitespace.
func Postprocess(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return t
	}

	for _, rule := range keywordStatementRules {
		t = rule.re.ReplaceAllString(t, rule.repl)
	}
	t = deadSingularRe.ReplaceAllString(t, "jest martwy")
	t = deadPluralRe.ReplaceAllString(t, "są martwe$1")
	t = multiSpaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// IsBadTranslation reports whether a translation must not be cached or
// written: empty, mojibake, an unchanged copy of a translatable source,
// or English in and English out.
func IsBadTranslation(source, translated string) bool {
	src := strings.TrimSpace(source)
	tr := strings.TrimSpace(translated)

	if tr == "" {
		return true
	}
	if mojibakeRe.MatchString(tr) {
		return true
	}
	if src == tr && ShouldTranslateComment(src) {
		return true
	}
	return looksEnglish(src) && looksEnglish(tr)
}
