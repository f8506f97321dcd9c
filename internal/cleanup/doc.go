// Package cleanup applies deterministic fixes to machine-translated
// pages: mistranslated programming terms, doubled words, stray English
// articles in front of formatted terms, and the keyword list that must
// stay in English.
//
// The built-in rules encode corrections accumulated while proofreading
// the Polish mirror. Extra rules can be loaded from a JSONC file.
package cleanup
