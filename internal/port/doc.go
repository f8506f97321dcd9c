// Package port implements a TCP port availability probe.
//
// The serve command uses it for a verbose-mode heads-up when the fixed
// launcher port already appears bound. The probe never gates anything:
// the static server subprocess is always started, and a real bind
// conflict surfaces as that subprocess's own error and exit code.
package port
