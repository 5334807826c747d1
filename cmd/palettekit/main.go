package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/palettekit/palettekit/internal/action"
	"github.com/palettekit/palettekit/internal/config"
	"github.com/palettekit/palettekit/internal/fuzzy"
	"github.com/palettekit/palettekit/internal/palette"
	"github.com/palettekit/palettekit/internal/release"
	"github.com/palettekit/palettekit/internal/runnables"
	"github.com/palettekit/palettekit/internal/telemetry"
	"github.com/palettekit/palettekit/internal/tui"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "palettekit",
	Short: "palettekit - fuzzy command palette with task scheduling",
	Long: `palettekit is a terminal command palette.

It ranks a catalog of namespaced actions by fuzzy match quality, usage
frequency, and name, and schedules project tasks discovered from task files.

Run without arguments to open the interactive palette.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		cfg.OutputPaths = []string{"stderr"}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalette()
	},
}

// tasksCmd lists the runnables discovered from task files
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks discovered from task files",
	RunE:  listTasks,
}

// runCmd schedules a single discovered task by name
var runCmd = &cobra.Command{
	Use:   "run [task-name]",
	Short: "Schedule a discovered task by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runTask,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPalette() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Release.Channel != "" {
		release.Set(cfg.Release.Channel)
	}

	filter := action.NewFilter()
	for _, ns := range cfg.Palette.HiddenNamespaces {
		filter.HideNamespace(ns)
	}

	registry := action.NewRegistry()
	if err := registry.RegisterAll(builtinActions()); err != nil {
		return err
	}

	inventory, scheduler, watcher, err := setupRunnables(cfg)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}
	if err := registry.RegisterAll(taskActions(inventory, scheduler)); err != nil {
		return err
	}

	matcherOpts := fuzzy.DefaultOptions()
	matcherOpts.SmartCase = cfg.Palette.SmartCase

	picker := palette.NewPicker(palette.Config{
		Source:    registry,
		Filter:    filter,
		Hits:      palette.NewHitCounts(),
		Matcher:   fuzzy.NewMatcher(matcherOpts),
		Telemetry: telemetry.NewLog(logger),
		Dispatcher: action.DispatchFunc(func(a action.Action) {
			if err := a.Run(); err != nil {
				logger.Warn("action failed",
					zap.String("action", a.Name()),
					zap.Error(err),
				)
				return
			}
			logger.Debug("action dispatched", zap.String("action", a.Name()))
		}),
	})

	program := tea.NewProgram(tui.New(picker), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// setupRunnables discovers tasks, wires the scheduler, and starts the task
// file watcher. A discovery error is logged, not fatal: the palette still
// works without tasks.
func setupRunnables(cfg config.Config) (*runnables.Inventory, *runnables.Scheduler, *runnables.Watcher, error) {
	inventory := runnables.NewInventory()

	found, err := runnables.Discover(context.Background(), cfg.Tasks.Roots, cfg.Tasks.File)
	if err != nil {
		logger.Warn("task discovery failed", zap.Error(err))
	}
	inventory.Replace(found)

	scheduler := runnables.NewScheduler(inventory, nil, runnables.SpawnFunc(func(req *runnables.SpawnRequest) {
		logger.Info("task scheduled",
			zap.String("schedule_id", req.ScheduleID),
			zap.String("label", req.Label),
			zap.String("command", req.Command),
			zap.Strings("args", req.Args),
			zap.String("cwd", req.Cwd),
		)
	}), logger)

	watcher, err := runnables.WatchTaskFiles(cfg.Tasks.Roots, cfg.Tasks.File, func() {
		found, err := runnables.Discover(context.Background(), cfg.Tasks.Roots, cfg.Tasks.File)
		if err != nil {
			logger.Warn("task rediscovery failed", zap.Error(err))
		}
		inventory.Replace(found)
		logger.Info("task files reloaded", zap.Int("tasks", inventory.Len()))
	}, logger)
	if err != nil {
		logger.Warn("task watcher unavailable", zap.Error(err))
		watcher = nil
	}

	return inventory, scheduler, watcher, nil
}

// taskActions exposes each discovered runnable, plus rerun, as palette
// actions in the task namespace.
func taskActions(inventory *runnables.Inventory, scheduler *runnables.Scheduler) []action.Action {
	actions := []action.Action{
		action.NewFunc("task::Rerun", func() error {
			if !scheduler.Rerun() {
				return fmt.Errorf("no task has been scheduled yet")
			}
			return nil
		}),
	}
	for _, r := range inventory.List() {
		r := r
		actions = append(actions, action.NewFuncKind(
			"task::"+r.Name(),
			"task::Spawn",
			func() error {
				scheduler.Schedule(r)
				return nil
			},
		))
	}
	return actions
}

// builtinActions is the demo catalog. Handlers log at info so dispatches are
// observable without a full editor behind them.
func builtinActions() []action.Action {
	names := []string{
		"editor::Backspace",
		"editor::Copy",
		"editor::Cut",
		"editor::Paste",
		"editor::SelectAll",
		"editor::ToggleComments",
		"go_to_line::Toggle",
		"pane::ActivateNextItem",
		"pane::ActivatePreviousItem",
		"pane::CloseActiveItem",
		"workspace::NewFile",
		"workspace::Save",
		"workspace::SaveAll",
		"workspace::ToggleLeftDock",
	}
	actions := make([]action.Action, 0, len(names))
	for _, name := range names {
		name := name
		actions = append(actions, action.NewFunc(name, func() error {
			logger.Info("command executed", zap.String("action", name))
			return nil
		}))
	}
	return actions
}

func listTasks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	found, err := runnables.Discover(context.Background(), cfg.Tasks.Roots, cfg.Tasks.File)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("no tasks found")
		return nil
	}
	for _, r := range found {
		fmt.Printf("%s\t%s\n", r.Name(), r.ID())
	}
	return nil
}

func runTask(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	inventory := runnables.NewInventory()
	found, err := runnables.Discover(context.Background(), cfg.Tasks.Roots, cfg.Tasks.File)
	if err != nil {
		return err
	}
	inventory.Replace(found)

	for _, r := range inventory.List() {
		if r.Name() == args[0] {
			scheduler := runnables.NewScheduler(inventory, nil, runnables.SpawnFunc(func(req *runnables.SpawnRequest) {
				fmt.Printf("scheduled %s: %s %v (cwd %q, id %s)\n",
					req.Label, req.Command, req.Args, req.Cwd, req.ScheduleID)
			}), logger)
			scheduler.Schedule(r)
			return nil
		}
	}
	return fmt.Errorf("unknown task %q", args[0])
}
