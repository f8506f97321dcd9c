// Package browser opens a URL in the user's default web browser.
//
// The open request is fire-and-forget: the launcher does not verify that
// a browser actually appeared, and a failure here never aborts the serve
// command. A BROWSER environment variable, when set, takes precedence
// over the OS default-handler mechanism — the same escape hatch
// terminals and CLIs conventionally honor.
package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/browser"
)

// openTimeout bounds how long a BROWSER override command may run before
// being abandoned. Real browsers detach immediately; anything still
// running after this long is stuck.
const openTimeout = 30 * time.Second

// OpenURL asks the operating system to open url in the default browser.
//
// If the BROWSER environment variable is set, it is treated as a shell
// command and invoked as `$BROWSER '<url>'`. Otherwise the request goes
// through pkg/browser, which knows the per-platform open mechanism
// (open / xdg-open / rundll32).
func OpenURL(url string) error {
	if browserEnv := os.Getenv("BROWSER"); browserEnv != "" {
		browserSh := fmt.Sprintf("%s '%s'", browserEnv, url)
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		// #nosec G204 — BROWSER is an explicit user-controlled override
		cmd := exec.CommandContext(ctx, "sh", "-c", browserSh)
		_, err := cmd.CombinedOutput()
		return err
	}

	return browser.OpenURL(url)
}
