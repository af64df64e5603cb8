// Package repository provides the in-memory task store.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/structs"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, t *structs.Task) (*structs.Task, error)
	GetByID(ctx context.Context, id int) (*structs.Task, error)
	List(ctx context.Context, completed bool) ([]*structs.Task, error)
	Update(ctx context.Context, t *structs.Task) (*structs.Task, error)
	Complete(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
}

// taskRepository keeps tasks in insertion order. Every method copies tasks
// in and out so callers never hold a reference into the store.
type taskRepository struct {
	mu    sync.RWMutex
	items map[int]*structs.Task
	order []int

	logger *logger.Logger
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(logger *logger.Logger) TaskRepository {
	return &taskRepository{
		items:  make(map[int]*structs.Task),
		logger: logger,
	}
}

// nextID returns 1 + the largest live id, or 1 when empty. Caller holds mu.
func (r *taskRepository) nextID() int {
	maxID := 0
	for id := range r.items {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Create stores a copy of t under a fresh id. ID and Completed on t are ignored.
func (r *taskRepository) Create(ctx context.Context, t *structs.Task) (*structs.Task, error) {
	if t == nil {
		return nil, fmt.Errorf("failed to create task: nil task")
	}

	r.mu.Lock()
	stored := t.Clone()
	stored.ID = r.nextID()
	stored.Completed = false
	r.items[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	created := stored.Clone()
	r.mu.Unlock()

	r.logger.Info(ctx, "task created", "id", created.ID)
	return created, nil
}

// GetByID retrieves a task by ID.
func (r *taskRepository) GetByID(_ context.Context, id int) (*structs.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, structs.ErrTaskNotFound
	}
	return t.Clone(), nil
}

// List returns tasks with the given completion state in insertion order.
func (r *taskRepository) List(_ context.Context, completed bool) ([]*structs.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*structs.Task, 0, len(r.order))
	for _, id := range r.order {
		if t := r.items[id]; t.Completed == completed {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks, nil
}

// Update overwrites title, description, priority and deadline.
func (r *taskRepository) Update(ctx context.Context, t *structs.Task) (*structs.Task, error) {
	if t == nil {
		return nil, fmt.Errorf("failed to update task: nil task")
	}

	r.mu.Lock()
	existing, ok := r.items[t.ID]
	if !ok {
		r.mu.Unlock()
		return nil, structs.ErrTaskNotFound
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Priority = t.Priority
	existing.Deadline = t.Deadline
	updated := existing.Clone()
	r.mu.Unlock()

	r.logger.Info(ctx, "task updated", "id", updated.ID)
	return updated, nil
}

// Complete marks a task done and reports whether it exists.
func (r *taskRepository) Complete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	t, ok := r.items[id]
	if ok {
		t.Completed = true
	}
	r.mu.Unlock()

	if ok {
		r.logger.Info(ctx, "task completed", "id", id)
	}
	return ok, nil
}

// Delete removes a task and reports whether one was removed.
func (r *taskRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	_, ok := r.items[id]
	if ok {
		delete(r.items, id)
		for i, oid := range r.order {
			if oid == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		r.logger.Info(ctx, "task deleted", "id", id)
	}
	return ok, nil
}

// Count returns the total number of tasks.
func (r *taskRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
