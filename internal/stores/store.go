// Package stores holds the backing-store implementations behind the
// task repository. The repository mutates its in-memory collection
// first and then persists through one of these; which implementation
// it gets is decided once, at construction.
package stores

import (
	"context"
	"errors"

	model "taskflow.app/taskflow/pkg/models"
)

var ErrNotFound = errors.New("task not found in store")

// Store persists settled mutations of the task collection.
//
// Load returns the full collection. Update and Delete address a single
// task by id; Update rewrites every mutable field of the given task.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Insert(ctx context.Context, task model.Task) error
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id string) error
}
