// Package runnables lists and schedules executable tasks such as build and
// test commands.
//
// The Inventory tracks the known runnables and the last one scheduled (for
// rerun). The Scheduler resolves a working directory — the runnable's own
// cwd, else a single eligible worktree, else the worktree containing the
// active entry — and emits a SpawnRequest to the terminal collaborator.
// Process spawning itself is out of scope.
//
// Task definitions load from per-worktree JSON files, scanned concurrently
// and reloaded when a Watcher sees the file change.
package runnables
