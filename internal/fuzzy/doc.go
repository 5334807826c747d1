// Package fuzzy provides the fuzzy string matching primitive behind the
// command palette.
//
// Matching is a greedy subsequence scan with position tracking, scored by
// configurable weights (consecutive runs, word boundaries, prefixes, gap
// penalties). Large candidate sets are split across workers; matching is
// cancellable via context so a superseded query stops doing work.
//
// # Ordering
//
// Results are ordered by descending score. Equal scores order by ascending
// candidate id, never by text: the palette pre-sorts its candidates by usage
// frequency and relies on ties preserving that order.
//
// # Smart case
//
// With SmartCase enabled, matching is case-insensitive until the query
// contains an uppercase rune, at which point it becomes case-sensitive.
package fuzzy
