package runnables

// Runnable is an executable task the runnables modal can schedule, such as a
// build or test command.
type Runnable interface {
	// ID uniquely identifies the runnable within the inventory.
	ID() string

	// Name is the display name shown in the modal.
	Name() string

	// Cwd returns the runnable's own working directory, or "" when it has
	// none and the scheduler should resolve one from the worktrees.
	Cwd() string

	// Exec produces the spawn request for the given working directory.
	// Returns nil when the runnable has nothing to spawn.
	Exec(cwd string) *SpawnRequest
}

// SpawnRequest describes a command for the terminal collaborator to spawn.
// This package never spawns processes itself.
type SpawnRequest struct {
	// ScheduleID correlates the request with one Schedule call.
	ScheduleID string

	// Label is the display label for the spawned terminal.
	Label string

	// Command is the executable to run.
	Command string

	// Args are the command arguments.
	Args []string

	// Env are extra environment variables.
	Env map[string]string

	// Cwd is the resolved working directory; "" means the spawner's default.
	Cwd string
}

// Static is a Runnable backed by a fixed command line, as loaded from task
// definition files.
type Static struct {
	TaskID  string   `json:"id"`
	Label   string   `json:"name"`
	Cmd     string   `json:"command"`
	CmdArgs []string `json:"args,omitempty"`
	WorkDir string   `json:"cwd,omitempty"`

	EnvVars map[string]string `json:"env,omitempty"`
}

// ID returns the task id.
func (s *Static) ID() string { return s.TaskID }

// Name returns the display name.
func (s *Static) Name() string { return s.Label }

// Cwd returns the task's own working directory, if any.
func (s *Static) Cwd() string { return s.WorkDir }

// Exec builds the spawn request. Tasks without a command produce nil.
func (s *Static) Exec(cwd string) *SpawnRequest {
	if s.Cmd == "" {
		return nil
	}
	return &SpawnRequest{
		Label:   s.Label,
		Command: s.Cmd,
		Args:    s.CmdArgs,
		Env:     s.EnvVars,
		Cwd:     cwd,
	}
}
