package gorm

import (
	"time"

	"github.com/bornholm/todo/internal/core/model"
)

type Todo struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt Timestamp `gorm:"not null"`

	Owner   *User
	OwnerID string `gorm:"index;not null"`

	Title string `gorm:"not null"`
	Memo  string

	CompletedAt *Timestamp `gorm:"index"`
}

type wrappedTodo struct {
	t *Todo
}

// ID implements model.Todo.
func (w *wrappedTodo) ID() model.TodoID {
	return model.TodoID(w.t.ID)
}

// OwnerID implements model.Todo.
func (w *wrappedTodo) OwnerID() model.UserID {
	return model.UserID(w.t.OwnerID)
}

// Title implements model.Todo.
func (w *wrappedTodo) Title() string {
	return w.t.Title
}

// Memo implements model.Todo.
func (w *wrappedTodo) Memo() string {
	return w.t.Memo
}

// CreatedAt implements model.Todo.
func (w *wrappedTodo) CreatedAt() time.Time {
	return w.t.CreatedAt.Time()
}

// CompletedAt implements model.Todo.
func (w *wrappedTodo) CompletedAt() *time.Time {
	if w.t.CompletedAt == nil {
		return nil
	}

	completedAt := w.t.CompletedAt.Time()

	return &completedAt
}

var _ model.Todo = &wrappedTodo{}

func fromTodo(t model.Todo) *Todo {
	todo := &Todo{
		ID:        string(t.ID()),
		CreatedAt: NewTimestamp(t.CreatedAt()),
		OwnerID:   string(t.OwnerID()),
		Title:     t.Title(),
		Memo:      t.Memo(),
	}

	if completedAt := t.CompletedAt(); completedAt != nil {
		c := NewTimestamp(*completedAt)
		todo.CompletedAt = &c
	}

	return todo
}
