package cleanup

import "regexp"

// KeywordsRelPath is the one page whose keyword list must stay in
// English: translating C++ keywords would teach readers identifiers the
// compiler does not know.
const KeywordsRelPath = "cpp-tutorial/keywords-and-naming-identifiers/index.html"

// keywordListRe matches the keyword list widget. The page generator
// emits the div with an unquoted id, so the pattern matches that form
// exactly.
var keywordListRe = regexp.MustCompile(`(?s)(<div id=wid[^>]*><ul[^>]*>)(.*?)(</ul></div>)`)

// SyncKeywordList replaces the keyword list in current with the one from
// the English backup page. When either page has no recognizable list, or
// the lists already match, current is returned unchanged.
func SyncKeywordList(current, backup string) string {
	cm := keywordListRe.FindStringSubmatchIndex(current)
	bm := keywordListRe.FindStringSubmatch(backup)
	if cm == nil || bm == nil {
		return current
	}

	start, end := cm[4], cm[5]
	if current[start:end] == bm[2] {
		return current
	}
	return current[:start] + bm[2] + current[end:]
}
