package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ncobase/taskboard/internal/data"
	"github.com/ncobase/taskboard/internal/ecode"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/observes"
	"github.com/ncobase/taskboard/internal/structs"
	"github.com/ncobase/taskboard/internal/validator"
)

// Clock returns the current instant.
type Clock func() time.Time

// TaskService handles task-related business logic.
type TaskService struct {
	data   *data.Data
	logger *logger.Logger
	now    Clock
	loc    *time.Location
}

// NewTaskService creates a new task service.
func NewTaskService(d *data.Data, logger *logger.Logger, loc *time.Location, now Clock) *TaskService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &TaskService{
		data:   d,
		logger: logger,
		now:    now,
		loc:    loc,
	}
}

// Today returns the current civil date in the service timezone.
func (s *TaskService) Today() structs.Date {
	return structs.Today(s.now(), s.loc)
}

// CreateTask validates body and stores a new active task.
func (s *TaskService) CreateTask(ctx context.Context, body *structs.TaskBody) (_ *structs.ReadTask, err error) {
	ctx, span := observes.StartSpan(ctx, "TaskService.CreateTask")
	defer func() { observes.EndSpan(span, err) }()

	t, err := s.buildTask(body)
	if err != nil {
		return nil, err
	}

	created, err := s.data.TaskRepo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return structs.NewReadTask(created), nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int) (*structs.ReadTask, error) {
	t, err := s.data.TaskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return structs.NewReadTask(t), nil
}

// ListActive returns open tasks in insertion order, each with days_left
// computed against today.
func (s *TaskService) ListActive(ctx context.Context) ([]*structs.ReadTask, error) {
	tasks, err := s.data.TaskRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}

	today := s.Today()
	out := make([]*structs.ReadTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, structs.NewReadTask(t).WithDaysLeft(today))
	}
	return out, nil
}

// ListCompleted returns finished tasks in insertion order.
func (s *TaskService) ListCompleted(ctx context.Context) ([]*structs.ReadTask, error) {
	tasks, err := s.data.TaskRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}

	out := make([]*structs.ReadTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, structs.NewReadTask(t))
	}
	return out, nil
}

// UpdateTask overwrites the editable fields of an existing task. A missing
// id is reported before the body is validated.
func (s *TaskService) UpdateTask(ctx context.Context, id int, body *structs.TaskBody) (_ *structs.ReadTask, err error) {
	ctx, span := observes.StartSpan(ctx, "TaskService.UpdateTask")
	defer func() { observes.EndSpan(span, err) }()

	if _, err := s.data.TaskRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.buildTask(body)
	if err != nil {
		return nil, err
	}
	t.ID = id

	updated, err := s.data.TaskRepo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	return structs.NewReadTask(updated), nil
}

// CompleteTask marks a task done. A missing id is not an error; the result
// reports whether a task matched.
func (s *TaskService) CompleteTask(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := observes.StartSpan(ctx, "TaskService.CompleteTask")
	defer func() { observes.EndSpan(span, err) }()

	ok, err := s.data.TaskRepo.Complete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete task: %w", err)
	}
	if !ok {
		s.logger.Debug(ctx, "complete ignored unknown task", "id", id)
	}
	return ok, nil
}

// DeleteTask removes a task. A missing id is not an error; the result
// reports whether a row was removed.
func (s *TaskService) DeleteTask(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := observes.StartSpan(ctx, "TaskService.DeleteTask")
	defer func() { observes.EndSpan(span, err) }()

	ok, err := s.data.TaskRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	if !ok {
		s.logger.Debug(ctx, "delete ignored unknown task", "id", id)
	}
	return ok, nil
}

// CountTasks returns the number of stored tasks.
func (s *TaskService) CountTasks(ctx context.Context) (int, error) {
	return s.data.TaskRepo.Count(ctx)
}

// buildTask normalises and validates body, then parses the deadline.
func (s *TaskService) buildTask(body *structs.TaskBody) (*structs.Task, error) {
	if body == nil {
		body = &structs.TaskBody{}
	}
	normalized := structs.TaskBody{
		Title:       strings.TrimSpace(body.Title),
		Description: body.Description,
		Priority:    string(structs.ParsePriority(body.Priority)),
		Deadline:    strings.TrimSpace(body.Deadline),
	}

	if errs := validator.Validate(&normalized); len(errs) > 0 {
		return nil, toValidationError(errs)
	}

	deadline, err := structs.ParseDate(normalized.Deadline)
	if err != nil {
		return nil, &structs.ValidationError{
			Field:   "deadline",
			Reason:  structs.ReasonMalformedDate,
			Message: "Invalid date format!",
			Fields:  map[string]string{"deadline": err.Error()},
		}
	}

	return &structs.Task{
		Title:       normalized.Title,
		Description: normalized.Description,
		Priority:    structs.Priority(normalized.Priority),
		Deadline:    deadline,
	}, nil
}

// toValidationError collects every failing field and reports one of them:
// a missing field first, then a malformed date, then anything else.
func toValidationError(errs []validator.FieldError) *structs.ValidationError {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field] = e.Message
	}

	first := errs[0]
	for _, tag := range []string{"required", "datetime"} {
		if e, ok := findTag(errs, tag); ok {
			first = e
			break
		}
	}
	ve := &structs.ValidationError{Field: first.Field, Fields: fields}
	switch first.Tag {
	case "required":
		ve.Reason = structs.ReasonMissing
		ve.Message = "Error: All fields are required! (" + ecode.FieldIsRequired(first.Field) + ")"
	case "datetime":
		ve.Reason = structs.ReasonMalformedDate
		ve.Message = "Invalid date format! Use YYYY-MM-DD."
	default:
		ve.Reason = structs.ReasonInvalid
		ve.Message = first.Message
	}
	return ve
}

func findTag(errs []validator.FieldError, tag string) (validator.FieldError, bool) {
	for _, e := range errs {
		if e.Tag == tag {
			return e, true
		}
	}
	return validator.FieldError{}, false
}
