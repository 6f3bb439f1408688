package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "taskflow.app/taskflow/internal/errors"
	"taskflow.app/taskflow/internal/stores"
	model "taskflow.app/taskflow/pkg/models"
)

// TaskService is the single source of truth for the task collection
// during a session. Mutations are applied to the in-memory collection
// first and then persisted through the backing store; a persistence
// failure restores the pre-mutation snapshot verbatim and records the
// failure in the error slot.
//
// A nil store means the cloud is configured but no user is signed in:
// the collection stays empty and Add fails fast.
type TaskService struct {
	mu      sync.Mutex
	store   stores.Store
	tasks   []model.Task
	loaded  bool
	lastErr *apperrors.Exception
}

func NewTaskService(store stores.Store) *TaskService {
	return &TaskService{store: store}
}

// Init resets the collection and reloads it from the backing store.
// Call it once at startup and again whenever the owning user changes.
// The loaded flag is set in every outcome, including failure, so the
// caller's loading state can never hang.
func (s *TaskService) Init(ctx context.Context) error {
	s.mu.Lock()
	s.tasks = nil
	s.loaded = false
	s.mu.Unlock()

	var (
		tasks []model.Task
		err   error
	)
	if s.store != nil {
		tasks, err = s.store.Load(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		log.Printf("task service: load failed: %v", err)
		s.tasks = nil
		s.lastErr = apperrors.ErrLoadFailed
		return apperrors.ErrLoadFailed
	}

	s.tasks = tasks
	return nil
}

func (s *TaskService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Err returns the most recent persistence failure. It is never cleared
// by a later success, only by ClearErr.
func (s *TaskService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr == nil {
		return nil
	}
	return s.lastErr
}

func (s *TaskService) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// Add creates a task from form data and appends it to the collection.
// The returned task is the caller's copy.
func (s *TaskService) Add(ctx context.Context, form model.TaskFormData) (*model.Task, error) {
	if s.store == nil {
		s.mu.Lock()
		s.lastErr = apperrors.ErrIdentityRequired
		s.mu.Unlock()
		return nil, apperrors.ErrIdentityRequired
	}

	task := s.newTask(form)

	err := s.mutate(ctx,
		func(tasks []model.Task) []model.Task {
			return append(tasks, task.Clone())
		},
		func(ctx context.Context) error {
			return s.store.Insert(ctx, task)
		},
		apperrors.ErrCloudSaveFailed,
	)
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) newTask(form model.TaskFormData) model.Task {
	var priority *model.Priority
	if form.Priority != nil && *form.Priority != "" {
		v := *form.Priority
		priority = &v
	}

	tags := form.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(form.Title),
		Date:      form.Date,
		Completed: false,
		CreatedAt: time.Now().UTC(),
		Notes:     model.NormalizeNotes(form.Notes),
		Priority:  priority,
		Tags:      append([]string(nil), tags...),
	}
}

// Update rewrites the patched fields of the matching task and refreshes
// its updated-at time. An unknown id is silently ignored.
func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) error {
	current, ok := s.find(id)
	if !ok {
		return nil
	}

	updated := patch.Apply(current, time.Now().UTC())
	return s.persistRewrite(ctx, updated, apperrors.ErrSyncFailed)
}

// Toggle flips completion, keeping completed and completed-at in step.
func (s *TaskService) Toggle(ctx context.Context, id string) error {
	current, ok := s.find(id)
	if !ok {
		return nil
	}

	now := time.Now().UTC()
	updated := current.Clone()
	updated.Completed = !current.Completed
	if updated.Completed {
		updated.CompletedAt = &now
	} else {
		updated.CompletedAt = nil
	}
	updated.UpdatedAt = &now

	return s.persistRewrite(ctx, updated, apperrors.ErrSyncFailed)
}

// Delete removes the matching task. An unknown id is silently ignored.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if _, ok := s.find(id); !ok {
		return nil
	}

	return s.mutate(ctx,
		func(tasks []model.Task) []model.Task {
			kept := tasks[:0]
			for _, t := range tasks {
				if t.ID != id {
					kept = append(kept, t)
				}
			}
			return kept
		},
		func(ctx context.Context) error {
			return s.store.Delete(ctx, id)
		},
		apperrors.ErrCloudDeleteFailed,
	)
}

func (s *TaskService) persistRewrite(ctx context.Context, updated model.Task, failure *apperrors.Exception) error {
	return s.mutate(ctx,
		func(tasks []model.Task) []model.Task {
			for i := range tasks {
				if tasks[i].ID == updated.ID {
					tasks[i] = updated.Clone()
				}
			}
			return tasks
		},
		func(ctx context.Context) error {
			return s.store.Update(ctx, updated)
		},
		failure,
	)
}

// mutate is the shared optimistic-write path: snapshot the collection,
// apply the in-memory transform, persist, and on failure restore the
// snapshot and record the typed error. The last response to land wins
// the rollback when callers race; sequencing is the caller's job.
func (s *TaskService) mutate(
	ctx context.Context,
	apply func([]model.Task) []model.Task,
	persist func(context.Context) error,
	failure *apperrors.Exception,
) error {
	s.mu.Lock()
	snapshot := s.tasks
	s.tasks = apply(cloneTasks(s.tasks))
	s.mu.Unlock()

	if err := persist(ctx); err != nil {
		log.Printf("task service: %s: %v", failure.Message, err)
		s.mu.Lock()
		s.tasks = snapshot
		s.lastErr = failure
		s.mu.Unlock()
		return failure
	}

	return nil
}

// Tasks returns a snapshot copy of the whole collection.
func (s *TaskService) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// ByDate returns the tasks assigned to one calendar day.
func (s *TaskService) ByDate(date string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Task{}
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t.Clone())
		}
	}
	return out
}

// ByMonth returns the tasks whose date carries the YYYY-MM prefix.
func (s *TaskService) ByMonth(yearMonth string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Task{}
	for _, t := range s.tasks {
		if strings.HasPrefix(t.Date, yearMonth) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *TaskService) find(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Task{}, false
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
