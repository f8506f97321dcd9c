// Package interp — server.go runs the interpreter's built-in static file
// server (`python -m http.server <port>`) as a blocking child process.
//
// The child serves the current working directory recursively; the caller
// is expected to have changed directory before invoking RunServer. All
// standard streams are attached so the server's own output (startup line,
// per-request log, bind errors) reaches the user unmodified.
package interp

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
)

// RunServer runs `<python> -m http.server <port>` in the current working
// directory and blocks until the server exits.
//
// While the child runs, SIGINT is ignored in this process. A Ctrl-C in the
// terminal is delivered to the whole foreground process group, so the
// server receives it directly and shuts down; ignoring it here keeps the
// launcher alive long enough to observe and propagate the child's exit
// status.
//
// The returned error is exactly what exec.Cmd.Run produced: an
// *exec.ExitError when the server terminated with a non-zero status, or
// another error kind when the process could not be started at all.
func RunServer(ctx context.Context, python string, port int) error {
	// #nosec G204 — python is a LookPath-resolved candidate, not user input
	cmd := exec.CommandContext(ctx, python, "-m", "http.server", strconv.Itoa(port))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	return cmd.Run()
}

// ExitStatus translates the error returned by RunServer into the exit
// code the launcher should terminate with.
//
// nil maps to 0 (graceful shutdown). An *exec.ExitError maps to the
// child's own exit code — this is how bind failures ("address already in
// use") and interrupt exits propagate unmodified. Any other error (the
// process never started) maps to 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
