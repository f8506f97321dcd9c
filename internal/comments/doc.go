// Package comments translates English comments inside the C++ samples of
// mirrored tutorial pages.
//
// Pages embed code as escaped text in <code> elements. The package
// unescapes each element, locates comment spans with a small C++ lexer
// (string literals and raw strings are honored so a // inside a string
// is not mistaken for a comment), decides per comment whether it is
// English prose worth translating, and rewrites the spans from the
// translation cache. Everything outside comment spans is preserved
// byte-for-byte.
package comments
