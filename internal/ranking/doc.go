// Package ranking implements lexical product search over an in-memory catalog:
// edit distance, per-entry relevance scoring, ranked search, autocomplete
// suggestions and term highlighting.
//
// Every function is pure. The catalog is passed in on each call and nothing is
// cached between calls, so callers may swap catalog snapshots freely.
package ranking
