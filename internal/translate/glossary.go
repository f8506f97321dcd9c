package translate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Glossary is an ordered set of forced term replacements applied to
// every translation. It encodes the project's terminology decisions
// (e.g., a "caller" is always "wywołujący", never "dzwoniący") so the
// machine translation cannot drift between synonyms across pages.
type Glossary struct {
	terms []glossaryTerm
}

type glossaryTerm struct {
	From string
	To   string
}

// glossaryFile is the YAML shape of a glossary file:
//
//	terms:
//	  "dzwoniący": "wywołujący"
//	  "próżnia": "void"
type glossaryFile struct {
	Terms map[string]string `yaml:"terms"`
}

// LoadGlossary reads a YAML glossary file. Terms are sorted longest-first
// so that a longer phrase is replaced before any of its substrings.
func LoadGlossary(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary %s: %w", path, err)
	}

	var file glossaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse glossary %s: %w", path, err)
	}

	g := &Glossary{}
	for from, to := range file.Terms {
		if strings.TrimSpace(from) == "" {
			return nil, fmt.Errorf("glossary %s: empty term", path)
		}
		g.terms = append(g.terms, glossaryTerm{From: from, To: to})
	}

	sort.Slice(g.terms, func(i, j int) bool {
		if len(g.terms[i].From) != len(g.terms[j].From) {
			return len(g.terms[i].From) > len(g.terms[j].From)
		}
		return g.terms[i].From < g.terms[j].From
	})
	return g, nil
}

// Len returns the number of glossary terms.
func (g *Glossary) Len() int {
	if g == nil {
		return 0
	}
	return len(g.terms)
}

// Apply rewrites all glossary terms in s. A nil glossary is a no-op, so
// pipelines can apply it unconditionally.
func (g *Glossary) Apply(s string) string {
	if g == nil {
		return s
	}
	for _, t := range g.terms {
		s = strings.ReplaceAll(s, t.From, t.To)
	}
	return s
}
