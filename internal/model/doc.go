// Package model defines the domain types and value objects for the
// lcpp CLI.
//
// This package contains pure data structures with no external
// dependencies: the language pair driving the translation pipeline,
// result statistics reported by the tree-processing commands, and the
// exit-code machinery (ExitCode, CLIError) that the CLI layer uses to
// translate domain errors into OS process exit codes.
package model
