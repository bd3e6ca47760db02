package model

import (
	"time"

	"github.com/rs/xid"
)

type TodoID string

func NewTodoID() TodoID {
	return TodoID(xid.New().String())
}

// Todo is a personal to-do item. A todo always belongs to exactly
// one user, the one who created it.
type Todo interface {
	WithID[TodoID]
	WithOwner
	WithCreatedAt

	Title() string
	Memo() string

	// CompletedAt returns nil while the todo is active
	CompletedAt() *time.Time
}

func IsCompleted(t Todo) bool {
	return t.CompletedAt() != nil
}

type BaseTodo struct {
	id          TodoID
	ownerID     UserID
	title       string
	memo        string
	createdAt   time.Time
	completedAt *time.Time
}

// ID implements Todo.
func (t *BaseTodo) ID() TodoID {
	return t.id
}

// OwnerID implements Todo.
func (t *BaseTodo) OwnerID() UserID {
	return t.ownerID
}

// Title implements Todo.
func (t *BaseTodo) Title() string {
	return t.title
}

// Memo implements Todo.
func (t *BaseTodo) Memo() string {
	return t.memo
}

// CreatedAt implements Todo.
func (t *BaseTodo) CreatedAt() time.Time {
	return t.createdAt
}

// CompletedAt implements Todo.
func (t *BaseTodo) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *BaseTodo) SetTitle(title string) {
	t.title = title
}

func (t *BaseTodo) SetMemo(memo string) {
	t.memo = memo
}

func (t *BaseTodo) SetCompletedAt(completedAt time.Time) {
	t.completedAt = &completedAt
}

var _ Todo = &BaseTodo{}

func NewTodo(ownerID UserID, title string, memo string, createdAt time.Time) *BaseTodo {
	return &BaseTodo{
		id:        NewTodoID(),
		ownerID:   ownerID,
		title:     title,
		memo:      memo,
		createdAt: createdAt,
	}
}

// CopyTodo returns a mutable copy of the given todo.
// Identity, ownership and creation date are carried over as is.
func CopyTodo(t Todo) *BaseTodo {
	copy := &BaseTodo{
		id:        t.ID(),
		ownerID:   t.OwnerID(),
		title:     t.Title(),
		memo:      t.Memo(),
		createdAt: t.CreatedAt(),
	}

	if completedAt := t.CompletedAt(); completedAt != nil {
		copy.SetCompletedAt(*completedAt)
	}

	return copy
}
