package cleanup

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/cpp-samouczek/lcpp/internal/model"
)

// directReplacements are literal find/replace pairs. Most repair
// mistranslations of C++ vocabulary ("dzwoniący" is a phone caller, not
// a function caller); a few fix doubled words the translation service
// produces.
var directReplacements = [][2]string{
	{"dzwoniącemu", "wywołującemu"},
	{"dzwoniący", "wywołujący"},
	{"gość</strong>", "wywołujący</strong>"},
	{"zwany</strong> funkcjonować", "zwany</strong> funkcją"},
	{"oświadczenie zwrotne", "instrukcja return"},
	{"wczesnym powrotem", "wczesnym zwrotem"},
	{"zwrócić według wartości", "zwracanie przez wartość"},
	{"zwrócić dzwoniącemu", "zwrócić wywołującemu"},
	{"zwracana dzwoniącemu", "zwracana wywołującemu"},
	{"próżnia", "void"},
	{"nie powinny</em> robisz", "nie powinieneś</em> robić"},
	{"powinieneś</em> robisz", "powinieneś</em> robić"},
	{"w hierarchia polimorficzna", "w hierarchii polimorficznej"},
	{"to tzw <strong>", "to tzw. <strong>"},
	{"to tzw <code>", "to tzw. <code>"},
	{"niewiarygodnie szybko i cały czas coraz szybciej", "bardzo szybkie i z roku na rok coraz szybsze"},
	{"w szerokim zakresie odnosi się", "odnosi się ogólnie"},
	{"z więcej niż tylko sprzęt", "nie tylko ze sprzętem"},
	{"komputerem komputer", "komputerem"},
	{"język język", "język"},
	{"mogą mogą być", "mogą być"},
	{"SUCHY</strong> programowanie", "DRY</strong> (nie powtarzaj się)"},
}

// regexReplacements run after the direct pairs. The matched tail is
// captured and re-inserted because RE2 has no lookahead.
var regexReplacements = []regexRule{
	// English articles left in front of formatted terms.
	{re: regexp.MustCompile(`(?i)\b(?:a|an|the)\s+(<strong>)`), repl: "$1"},
	{re: regexp.MustCompile(`(?i)\b(?:a|an|the)\s+(<code>)`), repl: "$1"},
	// Escaped ">" the translation glued onto lesson numbers.
	{re: regexp.MustCompile(`&gt;((?:\d+\.\d+|\d+\.x|[A-Z]\.\d+)\b)`), repl: "$1"},
}

type regexRule struct {
	re   *regexp.Regexp
	repl string
}

// Rules is a compiled set of cleanup replacements.
type Rules struct {
	direct [][2]string
	regex  []regexRule
}

// DefaultRules returns the built-in rule set.
func DefaultRules() *Rules {
	return &Rules{direct: directReplacements, regex: regexReplacements}
}

// rulesFile is the JSONC schema for user-supplied rules.
type rulesFile struct {
	Direct []struct {
		Old string `json:"old"`
		New string `json:"new"`
	} `json:"direct"`
	Regex []struct {
		Pattern string `json:"pattern"`
		Replace string `json:"replace"`
	} `json:"regex"`
}

// LoadRules reads extra rules from a JSONC file and appends them to the
// built-in set. User rules run after the defaults, so they can correct
// what the defaults produce.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitRulesError, "failed to read rules file", err)
	}

	var f rulesFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, model.WrapCLIError(model.ExitRulesError, fmt.Sprintf("failed to parse rules file %s", path), err)
	}

	rules := DefaultRules()
	for i, d := range f.Direct {
		if d.Old == "" {
			return nil, model.NewCLIError(model.ExitRulesError, fmt.Sprintf("rules file %s: direct rule %d has an empty \"old\" value", path, i))
		}
		rules.direct = append(rules.direct, [2]string{d.Old, d.New})
	}
	for i, r := range f.Regex {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitRulesError, fmt.Sprintf("rules file %s: regex rule %d", path, i), err)
		}
		rules.regex = append(rules.regex, regexRule{re: re, repl: r.Replace})
	}
	return rules, nil
}

// Apply runs every rule over the text: direct pairs first, then the
// regex rules.
func (r *Rules) Apply(text string) string {
	updated := text
	for _, d := range r.direct {
		updated = strings.ReplaceAll(updated, d[0], d[1])
	}
	for _, rx := range r.regex {
		updated = rx.re.ReplaceAllString(updated, rx.repl)
	}
	return updated
}
