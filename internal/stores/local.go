package stores

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	model "taskflow.app/taskflow/pkg/models"
)

// Local is the on-device fallback store: one JSON blob holding the
// whole collection, rewritten in full after every mutation. Load never
// fails to the caller (a missing or unreadable blob is an empty
// collection) and write failures are logged, not surfaced.
type Local struct {
	mu    sync.Mutex
	path  string
	tasks []model.Task
}

func NewLocal(path string) *Local {
	return &Local{path: path}
}

func (l *Local) Load(ctx context.Context) ([]model.Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tasks = nil

	b, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("local store: failed to read %s: %v", l.path, err)
		}
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		log.Printf("local store: failed to parse %s: %v", l.path, err)
		return []model.Task{}, nil
	}

	l.tasks = tasks
	return cloneAll(tasks), nil
}

func (l *Local) Insert(ctx context.Context, task model.Task) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tasks = append(l.tasks, task.Clone())
	l.flush()
	return nil
}

func (l *Local) Update(ctx context.Context, task model.Task) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.tasks {
		if l.tasks[i].ID == task.ID {
			l.tasks[i] = task.Clone()
			break
		}
	}
	l.flush()
	return nil
}

func (l *Local) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
	l.flush()
	return nil
}

func (l *Local) flush() {
	tasks := l.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}

	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		log.Printf("local store: failed to encode tasks: %v", err)
		return
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("local store: failed to create %s: %v", dir, err)
			return
		}
	}

	if err := os.WriteFile(l.path, b, 0o644); err != nil {
		log.Printf("local store: failed to write %s: %v", l.path, err)
	}
}

func cloneAll(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
