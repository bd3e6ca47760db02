package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/metrics"
	"github.com/pkg/errors"
)

type TodoManagerOptions struct {
	Clock func() time.Time
}

type TodoManagerOptionFunc func(opts *TodoManagerOptions)

func WithTodoManagerClock(clock func() time.Time) TodoManagerOptionFunc {
	return func(opts *TodoManagerOptions) {
		opts.Clock = clock
	}
}

func NewTodoManagerOptions(funcs ...TodoManagerOptionFunc) *TodoManagerOptions {
	opts := &TodoManagerOptions{
		Clock: time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// TodoManager implements the todo operations available to an
// authenticated user. Every operation is scoped to its owner: the store
// never returns nor modifies a todo belonging to someone else, and such a
// todo is reported as port.ErrNotFound.
type TodoManager struct {
	store port.TodoStore
	clock func() time.Time
}

func NewTodoManager(store port.TodoStore, funcs ...TodoManagerOptionFunc) *TodoManager {
	opts := NewTodoManagerOptions(funcs...)
	return &TodoManager{
		store: store,
		clock: opts.Clock,
	}
}

func (m *TodoManager) now() time.Time {
	return m.clock().UTC()
}

// ListActive returns the owner's todos that are not completed yet, oldest first
func (m *TodoManager) ListActive(ctx context.Context, owner model.UserID) ([]model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	completed := false

	todos, err := m.store.QueryTodos(ctx, owner, port.QueryTodosOptions{
		Completed: &completed,
		OrderBy:   port.TodoOrderCreatedAtAsc,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todos, nil
}

// ListCompleted returns the owner's completed todos, most recently completed first
func (m *TodoManager) ListCompleted(ctx context.Context, owner model.UserID) ([]model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	completed := true

	todos, err := m.store.QueryTodos(ctx, owner, port.QueryTodosOptions{
		Completed: &completed,
		OrderBy:   port.TodoOrderCompletedAtDesc,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todos, nil
}

func (m *TodoManager) GetForEdit(ctx context.Context, owner model.UserID, id model.TodoID) (model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	todo, err := m.store.GetTodo(ctx, owner, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todo, nil
}

func (m *TodoManager) Create(ctx context.Context, owner model.UserID, input TodoInput) (model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	input = input.Normalize()

	todo := model.NewTodo(owner, input.Title, input.Memo, m.now())

	if err := m.store.CreateTodo(ctx, todo); err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationCreate).Inc()

	slog.DebugContext(ctx, "todo created", slog.String("todo_id", string(todo.ID())))

	return todo, nil
}

// Update overwrites the title and memo of the owner's todo. The todo is
// resolved before the input is validated, so an invalid update of a todo
// the owner cannot see still reports port.ErrNotFound.
func (m *TodoManager) Update(ctx context.Context, owner model.UserID, id model.TodoID, input TodoInput) (model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	todo, err := m.store.UpdateTodo(ctx, owner, id, func(ctx context.Context, todo *model.BaseTodo) error {
		if err := input.Validate(); err != nil {
			return errors.WithStack(err)
		}

		normalized := input.Normalize()

		todo.SetTitle(normalized.Title)
		todo.SetMemo(normalized.Memo)

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationUpdate).Inc()

	return todo, nil
}

// Complete marks the owner's todo as completed now. Completing an already
// completed todo moves its completion date to now.
func (m *TodoManager) Complete(ctx context.Context, owner model.UserID, id model.TodoID) (model.Todo, error) {
	if owner == "" {
		return nil, errors.WithStack(ErrMissingOwner)
	}

	completedAt := m.now()

	todo, err := m.store.UpdateTodo(ctx, owner, id, func(ctx context.Context, todo *model.BaseTodo) error {
		todo.SetCompletedAt(completedAt)
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationComplete).Inc()

	return todo, nil
}

// Delete permanently removes the owner's todo
func (m *TodoManager) Delete(ctx context.Context, owner model.UserID, id model.TodoID) error {
	if owner == "" {
		return errors.WithStack(ErrMissingOwner)
	}

	if err := m.store.DeleteTodo(ctx, owner, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationDelete).Inc()

	slog.InfoContext(ctx, "todo deleted", slog.String("todo_id", string(id)))

	return nil
}
