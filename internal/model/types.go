// Package model defines the domain types for the lcpp CLI.
//
// The mirror maintenance pipeline operates on a tree of HTML files and a
// translation cache. These types are the shared vocabulary between the
// CLI layer and the processing packages (page, comments, cleanup).
package model

import (
	"fmt"
	"regexp"
)

// LangPair describes the translation direction for a pipeline run.
// Source may be a concrete language code or "auto" to let the translation
// service detect the source language per request.
type LangPair struct {
	// Source is the source language code (e.g., "en") or "auto".
	Source string `json:"source"`

	// Target is the target language code (e.g., "pl").
	Target string `json:"target"`
}

// langRegex validates language codes: two or three lowercase letters,
// optionally followed by a region subtag (e.g., "zh-CN" is normalized
// upstream, so only the plain form is accepted here).
var langRegex = regexp.MustCompile(`^[a-z]{2,3}$`)

// Validate checks that both sides of the pair are usable language codes.
// "auto" is only meaningful as a source language.
func (p LangPair) Validate() error {
	if p.Source != "auto" && !langRegex.MatchString(p.Source) {
		return fmt.Errorf("invalid source language %q (expected a code like \"en\" or \"auto\")", p.Source)
	}
	if !langRegex.MatchString(p.Target) {
		return fmt.Errorf("invalid target language %q (expected a code like \"pl\")", p.Target)
	}
	if p.Target == "auto" {
		return fmt.Errorf("target language must not be \"auto\"")
	}
	return nil
}

// String returns the pair in "source→target" form for log output.
func (p LangPair) String() string {
	return fmt.Sprintf("%s→%s", p.Source, p.Target)
}

// TreeStats summarizes a tree-processing run (translate, comments,
// cleanup). It is the value printed by the CLI layer in text or JSON form
// when a command finishes.
type TreeStats struct {
	// Files is the number of HTML files visited.
	Files int `json:"files"`

	// Changed is the number of files that were actually rewritten.
	Changed int `json:"changed"`

	// CacheSize is the number of entries in the translation cache after
	// the run. Zero for commands that do not use a cache (cleanup).
	CacheSize int `json:"cacheSize,omitempty"`

	// Errors is the number of files that failed to process. Per-file
	// failures are logged and skipped; they do not abort the walk.
	Errors int `json:"errors,omitempty"`
}

// String returns a one-line human-readable summary.
func (s TreeStats) String() string {
	return fmt.Sprintf("files=%d changed=%d cache=%d errors=%d",
		s.Files, s.Changed, s.CacheSize, s.Errors)
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred. The serve
	// command also uses code 1 when no Python interpreter is found on
	// PATH, matching the launcher contract.
	ExitGeneralError ExitCode = 1

	// ExitTranslationFailed indicates the translation service could not
	// be reached or kept returning unusable output.
	ExitTranslationFailed ExitCode = 2

	// ExitCacheError indicates the translation cache could not be
	// loaded or written (corrupt file, unreachable Redis).
	ExitCacheError ExitCode = 3

	// ExitRulesError indicates a cleanup rules file could not be parsed
	// or failed validation.
	ExitRulesError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description. A CLIError with an
	// empty Message exits silently: the command has already reported the
	// failure on its own (the serve command's interactive interpreter
	// message uses this).
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Quiet reports whether the error should exit without any additional
// output from the CLI error printer.
func (e *CLIError) Quiet() bool {
	return e.Message == "" && e.Err == nil
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// NewExitError creates a quiet CLIError that carries only an exit code.
// Used when the command has already written its own user-facing output
// and the process just needs to terminate with a specific status.
func NewExitError(code ExitCode) *CLIError {
	return &CLIError{Code: code}
}
