// Package page translates the visible prose of mirrored HTML pages:
// text nodes and the title/alt/placeholder attributes.
//
// The pages are processed as raw tag/text token streams, not as a parsed
// DOM. The mirror must round-trip byte-for-byte wherever nothing was
// translated, and a full HTML parser would re-serialize attribute
// quoting, void elements, and entity forms it never touched. Content
// inside script, style, pre, code, textarea, svg, and math subtrees is
// never translated — that is where the C++ lessons keep their code.
package page
