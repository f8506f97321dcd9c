// Package translate talks to the machine-translation service and manages
// the batched, cache-first translation flow shared by the page and
// comments pipelines.
//
// Strings are packed into marker-delimited payloads so one HTTP request
// translates many short fragments; the markers survive translation and
// let the response be split back apart. When a batch comes back mangled,
// the flow degrades to per-string requests, and ultimately to leaving the
// source text unchanged — a missing translation is always preferable to
// corrupting the mirror.
package translate
