package runnables

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultTaskFile is the worktree-relative task definition file.
const DefaultTaskFile = ".palettekit/tasks.json"

// taskFile is the on-disk task definition format.
type taskFile struct {
	Tasks []Static `json:"tasks"`
}

// Discover scans each root for a task definition file and returns the
// runnables found. Roots are scanned concurrently. A missing file is not an
// error; a malformed one is, but scanning continues and the runnables from
// healthy roots are still returned alongside the first error.
func Discover(ctx context.Context, roots []string, fileName string) ([]Runnable, error) {
	if fileName == "" {
		fileName = DefaultTaskFile
	}

	var (
		mu    sync.Mutex
		found []Runnable
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runnables, err := loadTaskFile(root, fileName)
			if err != nil {
				return err
			}
			mu.Lock()
			found = append(found, runnables...)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return found, err
}

// loadTaskFile parses one root's task file. A missing file yields nothing.
func loadTaskFile(root, fileName string) ([]Runnable, error) {
	path := filepath.Join(root, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task file %s: %w", path, err)
	}

	var tf taskFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}

	runnables := make([]Runnable, 0, len(tf.Tasks))
	for i := range tf.Tasks {
		task := tf.Tasks[i]
		if task.TaskID == "" {
			// Stable fallback id scoped to the defining root.
			task.TaskID = fmt.Sprintf("%s#%s", root, task.Label)
		}
		runnables = append(runnables, &task)
	}
	return runnables, nil
}
