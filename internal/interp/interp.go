// Package interp — interp.go implements interpreter discovery.
//
// Design decisions:
//   - We shell out to the system Python rather than serving files
//     ourselves because the mirror launcher's contract is to delegate all
//     HTTP concerns to `python -m http.server`, an external collaborator.
//   - Candidates are probed with exec.LookPath in a fixed priority order;
//     the first hit wins. There is no retry and no configuration — the
//     candidate list is part of the launcher contract.
package interp

import (
	"errors"
	"os/exec"
)

// Candidates is the ordered list of interpreter command names probed by
// Detect. python3 is preferred; plain python is the fallback for systems
// where only an unversioned binary exists.
var Candidates = []string{"python3", "python"}

// ErrNotFound is returned by Detect when none of the candidate commands
// is present on the executable search path.
var ErrNotFound = errors.New("no Python interpreter found in PATH")

// Detect probes the candidate interpreter commands in priority order and
// returns the resolved path of the first one found.
//
// The probe is a pure existence check via exec.LookPath — the interpreter
// is not executed. Returns ErrNotFound when no candidate resolves.
func Detect() (string, error) {
	for _, name := range Candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// IsAvailable checks whether a specific interpreter command resolves on
// the executable search path.
func IsAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
