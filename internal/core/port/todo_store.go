package port

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
)

// TodoStore persists todos. Every method is scoped to an owner: a todo
// belonging to another user behaves exactly as if it did not exist.
type TodoStore interface {
	// QueryTodos returns the todos of the given owner matching the options
	QueryTodos(ctx context.Context, ownerID model.UserID, opts QueryTodosOptions) ([]model.Todo, error)

	// GetTodo returns the owner's todo with the given id, or ErrNotFound
	GetTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) (model.Todo, error)

	// CreateTodo persists a new todo
	CreateTodo(ctx context.Context, todo model.Todo) error

	// UpdateTodo atomically loads the owner's todo, applies fn to it and saves
	// the result. It returns ErrNotFound without calling fn if the todo does not
	// exist. If fn returns an error, nothing is saved and the error is returned.
	UpdateTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID, fn UpdateTodoFunc) (model.Todo, error)

	// DeleteTodo permanently removes the owner's todo, or returns ErrNotFound
	DeleteTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) error
}

type UpdateTodoFunc func(ctx context.Context, todo *model.BaseTodo) error

type TodoOrder string

const (
	TodoOrderCreatedAtAsc    TodoOrder = "created_at_asc"
	TodoOrderCompletedAtDesc TodoOrder = "completed_at_desc"
)

type QueryTodosOptions struct {
	// Completed filters todos on their completion state when not nil
	Completed *bool
	OrderBy   TodoOrder
}
