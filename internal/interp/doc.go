// Package interp locates a Python interpreter on the executable search
// path and runs its built-in static file server as a foreground child
// process.
//
// The serve command depends on this package for both halves of the
// launcher contract: probe-then-fallback interpreter selection, and
// synchronous server execution with faithful exit-code propagation.
package interp
