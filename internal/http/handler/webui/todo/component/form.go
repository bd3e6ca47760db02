package component

import "github.com/bornholm/todo/internal/core/model"

type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

// TodoForm holds the submitted (or stored) values of a todo along with
// the validation messages to display next to each field.
type TodoForm struct {
	Mode    FormMode
	ID      model.TodoID
	Title   string
	Memo    string
	Errors  map[string]string
	Message string

	// Completed is set when editing an already completed todo
	Completed bool
}

func (f TodoForm) IsEdit() bool {
	return f.Mode == FormModeEdit
}

func NewCreateForm() TodoForm {
	return TodoForm{
		Mode: FormModeCreate,
	}
}

func NewEditForm(todo model.Todo) TodoForm {
	return TodoForm{
		Mode:      FormModeEdit,
		ID:        todo.ID(),
		Title:     todo.Title(),
		Memo:      todo.Memo(),
		Completed: model.IsCompleted(todo),
	}
}
