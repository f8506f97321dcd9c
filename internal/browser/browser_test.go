package browser

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOpenURL_BrowserEnvOverride verifies that a BROWSER override is
// executed instead of the OS default handler. `true` ignores its
// arguments and exits 0, so a nil error proves the override path ran.
func TestOpenURL_BrowserEnvOverride(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("BROWSER override uses sh, not available on windows")
	}

	t.Setenv("BROWSER", "true")
	assert.NoError(t, OpenURL("http://127.0.0.1:8765/www.learncpp.com/index.html"))
}

// TestOpenURL_BrowserEnvFailure verifies that a failing override command
// surfaces an error to the caller (the serve command logs and ignores it).
func TestOpenURL_BrowserEnvFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("BROWSER override uses sh, not available on windows")
	}

	t.Setenv("BROWSER", "false")
	assert.Error(t, OpenURL("http://127.0.0.1:8765/www.learncpp.com/index.html"))
}
