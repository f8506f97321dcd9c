// Package cli — serve.go implements the "lcpp serve" command, the mirror
// launcher.
//
// Orchestration steps:
//  1. Change directory to the location of the lcpp executable
//  2. Probe for a Python interpreter (python3, then python)
//  3. No interpreter: print the Polish install message, wait for Enter,
//     exit with code 1
//  4. Open the default browser at the tutorial index (fire-and-forget)
//  5. Run `python -m http.server 8765` until it exits
//  6. Propagate the server's exit code as our own
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cpp-samouczek/lcpp/internal/browser"
	"github.com/cpp-samouczek/lcpp/internal/interp"
	"github.com/cpp-samouczek/lcpp/internal/model"
	"github.com/cpp-samouczek/lcpp/internal/port"
)

// Port is the fixed port the mirror is served on. It is the single
// source for both the browser URL and the server bind address.
const Port = 8765

// indexPath is where the mirrored site's entry page lives relative to
// the served directory. The launcher assumes this layout; it is a
// contract with the mirror tree, not configuration.
const indexPath = "www.learncpp.com/index.html"

// The interactive message shown when no interpreter is found. The
// launcher's audience is Polish readers of the mirror, so this one
// user-facing message is in Polish by design of the original launcher.
const (
	msgNoPythonLine1 = "Nie znaleziono Pythona. Zainstaluj go ze strony https://www.python.org/"
	msgNoPythonLine2 = "i upewnij się, że jest dodany do PATH."
	msgPressEnter    = "Naciśnij Enter, aby zakończyć..."
)

// NewServeCommand creates the "serve" cobra command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the mirror locally and open the browser",
		Long: fmt.Sprintf(`Serve the mirror directory over a local static HTTP server and open the
default browser at http://127.0.0.1:%d/%s.

The server is Python's built-in http.server, run as a subprocess from the
directory containing the lcpp executable. The command blocks until the
server exits (Ctrl-C) and exits with the server's own status code.`, Port, indexPath),

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), os.Stdin)
		},
	}
}

// runServe is the launcher. stdin is injected so tests can simulate the
// keypress on the no-interpreter path.
func runServe(ctx context.Context, stdin io.Reader) error {
	// The server serves the current directory; anchor it to the binary's
	// own location so the launcher works no matter where it is invoked
	// from.
	if err := chdirToExecutable(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to change to the mirror directory", err)
	}

	python, err := interp.Detect()
	if err != nil {
		// Interactive report, not an error dump: the launcher's user
		// double-clicked a binary and needs instructions, not a stack of
		// wrapped errors. The pause keeps the message readable when the
		// terminal window closes on exit.
		fmt.Println(msgNoPythonLine1)
		fmt.Println(msgNoPythonLine2)
		fmt.Println(msgPressEnter)
		waitForEnter(stdin)
		return model.NewExitError(model.ExitGeneralError)
	}
	VerboseLog("Interpreter: %s", python)

	if verbose && !port.NewScanner().IsPortAvailable(Port) {
		// Only a heads-up. The server reports bind failures itself and
		// its exit code propagates; pre-empting that would change the
		// launcher contract.
		VerboseLog("Port %d appears to be in use; the server may fail to bind", Port)
	}

	url := fmt.Sprintf("http://127.0.0.1:%d/%s", Port, indexPath)
	VerboseLog("Opening browser at %s", url)
	if err := browser.OpenURL(url); err != nil {
		VerboseLog("Could not open browser: %v", err)
	}

	serveErr := interp.RunServer(ctx, python, Port)
	if code := interp.ExitStatus(serveErr); code != 0 {
		return model.NewExitError(model.ExitCode(code))
	}
	return nil
}

// chdirToExecutable changes the working directory to the directory
// containing the running binary.
func chdirToExecutable() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return err
	}
	return os.Chdir(filepath.Dir(exe))
}

// waitForEnter blocks until the user presses Enter. EOF (stdin closed,
// non-interactive invocation) counts as a keypress so scripts never
// hang here.
func waitForEnter(stdin io.Reader) {
	_, _ = bufio.NewReader(stdin).ReadString('\n')
}
