package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadGlossary_Apply verifies term replacement, including the
// longest-first ordering that keeps a phrase from being clobbered by one
// of its substrings.
func TestLoadGlossary_Apply(t *testing.T) {
	path := writeGlossary(t, `
terms:
  "dzwoniący": "wywołujący"
  "dzwoniący program": "program wywołujący"
  "próżnia": "void"
`)

	g, err := LoadGlossary(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	out := g.Apply("dzwoniący program zwraca próżnia")
	assert.Equal(t, "program wywołujący zwraca void", out)
}

// TestLoadGlossary_EmptyTermRejected verifies validation of degenerate
// glossary entries.
func TestLoadGlossary_EmptyTermRejected(t *testing.T) {
	path := writeGlossary(t, `
terms:
  "  ": "coś"
`)

	_, err := LoadGlossary(path)
	assert.Error(t, err)
}

// TestLoadGlossary_MissingFile verifies a readable error for a missing
// glossary path.
func TestLoadGlossary_MissingFile(t *testing.T) {
	_, err := LoadGlossary(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestGlossary_NilIsNoOp verifies that pipelines can apply a nil
// glossary unconditionally.
func TestGlossary_NilIsNoOp(t *testing.T) {
	var g *Glossary
	assert.Equal(t, "unchanged", g.Apply("unchanged"))
	assert.Equal(t, 0, g.Len())
}
