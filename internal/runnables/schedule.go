package runnables

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAmbiguousCwd is returned by cwd resolution when several worktrees are
// eligible and none contains the active entry. It is recoverable: the
// scheduler logs it and spawns with no cwd.
var ErrAmbiguousCwd = errors.New("cannot determine runnable cwd for multiple worktrees")

// Worktree is the project collaborator cwd resolution reads from.
type Worktree interface {
	// AbsPath is the worktree root's absolute path.
	AbsPath() string

	// Visible reports whether the worktree is shown in the project panel.
	Visible() bool

	// Local reports whether the worktree is on the local filesystem.
	Local() bool

	// RootIsDir reports whether the worktree root is a directory.
	RootIsDir() bool

	// ContainsEntry reports whether the project entry lives in this worktree.
	ContainsEntry(entryID uint64) bool
}

// WorktreeSource supplies the project's worktrees and active entry.
type WorktreeSource interface {
	Worktrees() []Worktree

	// ActiveEntry returns the project entry with focus, if any.
	ActiveEntry() (uint64, bool)
}

// Spawner receives spawn requests. Process spawning itself is out of scope;
// the host editor's terminal owns it.
type Spawner interface {
	Spawn(req *SpawnRequest)
}

// SpawnFunc adapts a function to the Spawner interface.
type SpawnFunc func(req *SpawnRequest)

// Spawn calls the wrapped function.
func (f SpawnFunc) Spawn(req *SpawnRequest) { f(req) }

// Scheduler turns a selected runnable into a spawn request.
type Scheduler struct {
	inventory *Inventory
	worktrees WorktreeSource
	spawner   Spawner
	logger    *zap.Logger
}

// NewScheduler creates a scheduler. worktrees and spawner may be nil, in
// which case cwd resolution yields nothing and requests are dropped.
func NewScheduler(inv *Inventory, worktrees WorktreeSource, spawner Spawner, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		inventory: inv,
		worktrees: worktrees,
		spawner:   spawner,
		logger:    logger,
	}
}

// Schedule resolves a working directory for the runnable and emits its spawn
// request. The runnable's own cwd wins; otherwise the worktrees decide.
// Resolution failures are recoverable: they log and fall back to no cwd.
// Runnables producing no request are ignored.
func (s *Scheduler) Schedule(r Runnable) {
	cwd := r.Cwd()
	if cwd == "" {
		resolved, err := s.resolveCwd()
		if err != nil {
			s.logger.Warn("runnable cwd resolution failed",
				zap.String("runnable", r.Name()),
				zap.Error(err),
			)
		}
		cwd = resolved
	}

	req := r.Exec(cwd)
	if req == nil {
		return
	}
	req.ScheduleID = uuid.NewString()

	s.inventory.markScheduled(r.ID())
	if s.spawner != nil {
		s.spawner.Spawn(req)
	}
}

// Rerun schedules the last scheduled runnable again, if it still exists.
// Returns false when there is nothing to rerun.
func (s *Scheduler) Rerun() bool {
	r, ok := s.inventory.LastScheduled()
	if !ok {
		return false
	}
	s.Schedule(r)
	return true
}

// resolveCwd picks a working directory from the eligible worktrees:
// none → no cwd; exactly one → its root; several → the one containing the
// active entry, or ErrAmbiguousCwd when no worktree contains it.
func (s *Scheduler) resolveCwd() (string, error) {
	if s.worktrees == nil {
		return "", nil
	}

	var eligible []Worktree
	for _, wt := range s.worktrees.Worktrees() {
		if wt.Visible() && wt.Local() && wt.RootIsDir() {
			eligible = append(eligible, wt)
		}
	}

	switch len(eligible) {
	case 0:
		return "", nil
	case 1:
		return eligible[0].AbsPath(), nil
	default:
		entryID, ok := s.worktrees.ActiveEntry()
		if ok {
			for _, wt := range eligible {
				if wt.ContainsEntry(entryID) {
					return wt.AbsPath(), nil
				}
			}
		}
		return "", ErrAmbiguousCwd
	}
}
