// Package fuzzy provides fuzzy equality primitives for short strings:
// diacritic transliteration, Levenshtein edit distance, a bounded similarity
// ratio, and candidate ranking built on top of them.
//
// All functions are pure and safe for concurrent use. The only shared state is
// the read-only transliteration table built at package init.
package fuzzy
