package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/index.html": `<p>funkcja zwraca próżnia</p>`,
		"b/index.html": `<p>nic do poprawy</p>`,
	})

	stats, err := Run(root, DefaultRules(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Changed)
	assert.Equal(t, 0, stats.Errors)

	out, err := os.ReadFile(filepath.Join(root, "a", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, `<p>funkcja zwraca void</p>`, string(out))

	// A second run is a no-op.
	stats, err = Run(root, DefaultRules(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Changed)
}

func TestRun_KeywordSync(t *testing.T) {
	root := t.TempDir()
	backup := t.TempDir()
	writeTree(t, root, map[string]string{
		KeywordsRelPath: translatedKeywordsPage,
	})
	writeTree(t, backup, map[string]string{
		KeywordsRelPath: englishKeywordsPage,
	})

	stats, err := Run(root, DefaultRules(), Options{BackupRoot: backup})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Changed)

	out, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(KeywordsRelPath)))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<li>if</li><li>while</li>")
}

func TestRun_MissingBackupIsNotFatal(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		KeywordsRelPath: translatedKeywordsPage,
	})

	stats, err := Run(root, DefaultRules(), Options{BackupRoot: filepath.Join(t.TempDir(), "nope")})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Errors)
}

func TestRun_Limit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html": `<p>próżnia</p>`,
		"b.html": `<p>próżnia</p>`,
	})

	stats, err := Run(root, DefaultRules(), Options{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 1, stats.Changed)
}
