package cleanup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpp-samouczek/lcpp/internal/model"
)

func TestDefaultRules_DirectReplacements(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		in, want string
	}{
		{"wartość jest zwracana dzwoniącemu", "wartość jest zwracana wywołującemu"},
		{"funkcja zwraca próżnia", "funkcja zwraca void"},
		{"oświadczenie zwrotne kończy funkcję", "instrukcja return kończy funkcję"},
		{"język język C++", "język C++"},
		{"zasada <strong>SUCHY</strong> programowanie", "zasada <strong>DRY</strong> (nie powtarzaj się)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, rules.Apply(c.in))
	}
}

func TestDefaultRules_StrayArticles(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, "użyj <strong>słowa kluczowego</strong>", rules.Apply("użyj the <strong>słowa kluczowego</strong>"))
	assert.Equal(t, "to jest <code>int</code>", rules.Apply("to jest a <code>int</code>"))
	assert.Equal(t, "użyj The <strong>x</strong>", rules.Apply("użyj The The <strong>x</strong>"))
}

func TestDefaultRules_LessonNumberMarkers(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, "Lekcja 4.5 omawia", rules.Apply("Lekcja &gt;4.5 omawia"))
	assert.Equal(t, "Lekcja 12.x podsumowuje", rules.Apply("Lekcja &gt;12.x podsumowuje"))
	assert.Equal(t, "Dodatek B.2 opisuje", rules.Apply("Dodatek &gt;B.2 opisuje"))
	// A real comparison must survive.
	assert.Equal(t, "x &gt; y", rules.Apply("x &gt; y"))
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.jsonc")
	content := `{
	// extra corrections
	"direct": [
		{"old": "zły termin", "new": "dobry termin"}
	],
	"regex": [
		{"pattern": "foo+", "replace": "bar"}
	]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, "dobry termin", rules.Apply("zły termin"))
	assert.Equal(t, "bar bar", rules.Apply("foo foooo"))
	// Built-ins still apply.
	assert.Equal(t, "void", rules.Apply("próżnia"))
}

func TestLoadRules_Invalid(t *testing.T) {
	dir := t.TempDir()

	badRegex := filepath.Join(dir, "bad-regex.jsonc")
	require.NoError(t, os.WriteFile(badRegex, []byte(`{"regex": [{"pattern": "(", "replace": ""}]}`), 0o644))
	_, err := LoadRules(badRegex)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitRulesError, cliErr.Code)

	emptyOld := filepath.Join(dir, "empty-old.jsonc")
	require.NoError(t, os.WriteFile(emptyOld, []byte(`{"direct": [{"old": "", "new": "x"}]}`), 0o644))
	_, err = LoadRules(emptyOld)
	require.Error(t, err)

	_, err = LoadRules(filepath.Join(dir, "missing.jsonc"))
	require.Error(t, err)
}
