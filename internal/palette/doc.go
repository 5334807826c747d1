// Package palette implements the command palette's ranking and selection
// engine.
//
// A Picker owns one palette activation: it snapshots the action catalog as
// Commands (humanized display name + action), ranks them against the query
// as it changes, and runs the confirm/dismiss protocol on selection.
//
// Ranking combines three signals, in order:
//
//   - usage frequency: the full catalog is stable-sorted by descending
//     HitCounts before any fuzzy work, ties broken by name, so equally
//     scored fuzzy matches keep frequency order
//   - fuzzy similarity: smart-case subsequence matching with highlight
//     positions, run on background workers
//   - interception: a process-wide hook may synthesize a special match
//     (e.g. a recognized URL) that is spliced in ahead of all fuzzy results;
//     on dev builds an application link in the query overrides the hook
//
// Query passes are superseded, not awaited: each UpdateMatches carries a
// generation token and only the most recent completed pass for a still-live
// picker updates visible state.
package palette
