package gorm

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownedBy restricts a query to the todos of the given owner.
// Every todo query goes through it.
func ownedBy(ownerID model.UserID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("todos.owner_id = ?", string(ownerID))
	}
}

func findOwnedTodo(db *gorm.DB, ownerID model.UserID, todoID model.TodoID) (*Todo, error) {
	var todo Todo

	if err := db.Scopes(ownedBy(ownerID)).First(&todo, "todos.id = ?", string(todoID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &todo, nil
}

// QueryTodos implements port.TodoStore.
func (s *Store) QueryTodos(ctx context.Context, ownerID model.UserID, opts port.QueryTodosOptions) ([]model.Todo, error) {
	var todos []*Todo

	err := s.withDatabase(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Todo{}).Scopes(ownedBy(ownerID))

		if opts.Completed != nil {
			if *opts.Completed {
				query = query.Where("todos.completed_at IS NOT NULL")
			} else {
				query = query.Where("todos.completed_at IS NULL")
			}
		}

		switch opts.OrderBy {
		case port.TodoOrderCompletedAtDesc:
			query = query.Order("todos.completed_at DESC").Order("todos.id DESC")
		default:
			query = query.Order("todos.created_at ASC").Order("todos.id ASC")
		}

		if err := query.Find(&todos).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedTodos := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		wrappedTodos = append(wrappedTodos, &wrappedTodo{t})
	}

	return wrappedTodos, nil
}

// GetTodo implements port.TodoStore.
func (s *Store) GetTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) (model.Todo, error) {
	var todo *Todo

	err := s.withDatabase(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		t, err := findOwnedTodo(db, ownerID, todoID)
		if err != nil {
			return errors.WithStack(err)
		}

		todo = t

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTodo{todo}, nil
}

// CreateTodo implements port.TodoStore.
func (s *Store) CreateTodo(ctx context.Context, todo model.Todo) error {
	err := s.withDatabase(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit("Owner").Create(fromTodo(todo)).Error; err != nil {
			if isUniqueViolation(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// UpdateTodo implements port.TodoStore.
func (s *Store) UpdateTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID, fn port.UpdateTodoFunc) (model.Todo, error) {
	var updated *Todo

	err := s.withDatabase(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		existing, err := findOwnedTodo(db, ownerID, todoID)
		if err != nil {
			return errors.WithStack(err)
		}

		todo := model.CopyTodo(&wrappedTodo{existing})

		if err := fn(ctx, todo); err != nil {
			return errors.WithStack(err)
		}

		// Identity, ownership and creation date are never taken from fn
		row := fromTodo(todo)
		row.ID = existing.ID
		row.OwnerID = existing.OwnerID
		row.CreatedAt = existing.CreatedAt

		err = db.Model(row).
			Scopes(ownedBy(ownerID)).
			Select("title", "memo", "completed_at").
			Updates(row).Error
		if err != nil {
			return errors.WithStack(err)
		}

		updated = row

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTodo{updated}, nil
}

// DeleteTodo implements port.TodoStore.
func (s *Store) DeleteTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) error {
	err := s.withDatabase(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Scopes(ownedBy(ownerID)).Delete(&Todo{}, "todos.id = ?", string(todoID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
