package testsuite

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

type TodoStoreFactory func(t *testing.T) (port.TodoStore, port.UserStore, error)

var referenceTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestTodoStore(t *testing.T, factory TodoStoreFactory) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndQuery",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				todo := model.NewTodo(owner, "Buy milk", "", referenceTime)

				if err := todos.CreateTodo(ctx, todo); err != nil {
					return errors.WithStack(err)
				}

				active := false

				results, err := todos.QueryTodos(ctx, owner, port.QueryTodosOptions{Completed: &active})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				if e, g := todo.ID(), results[0].ID(); e != g {
					t.Errorf("results[0].ID(): expected %s, got %s", e, g)
				}

				if e, g := "Buy milk", results[0].Title(); e != g {
					t.Errorf("results[0].Title(): expected %s, got %s", e, g)
				}

				if e, g := "", results[0].Memo(); e != g {
					t.Errorf("results[0].Memo(): expected %q, got %q", e, g)
				}

				if results[0].CompletedAt() != nil {
					t.Errorf("results[0].CompletedAt(): expected nil, got %v", results[0].CompletedAt())
				}

				if !referenceTime.Equal(results[0].CreatedAt()) {
					t.Errorf("results[0].CreatedAt(): expected %v, got %v", referenceTime, results[0].CreatedAt())
				}

				return nil
			},
		},
		{
			Name: "OwnershipIsolation",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				alice, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				bob, err := createOwner(ctx, users, "bob")
				if err != nil {
					return errors.WithStack(err)
				}

				todo := model.NewTodo(alice, "Alice's secret", "memo", referenceTime)

				if err := todos.CreateTodo(ctx, todo); err != nil {
					return errors.WithStack(err)
				}

				if _, err := todos.GetTodo(ctx, bob, todo.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTodo(bob): expected ErrNotFound, got %+v", err)
				}

				called := false
				_, err = todos.UpdateTodo(ctx, bob, todo.ID(), func(ctx context.Context, todo *model.BaseTodo) error {
					called = true
					todo.SetTitle("hijacked")
					return nil
				})
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("UpdateTodo(bob): expected ErrNotFound, got %+v", err)
				}

				if called {
					t.Errorf("UpdateTodo(bob): update function should not have been called")
				}

				if err := todos.DeleteTodo(ctx, bob, todo.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("DeleteTodo(bob): expected ErrNotFound, got %+v", err)
				}

				bobTodos, err := todos.QueryTodos(ctx, bob, port.QueryTodosOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(bobTodos); e != g {
					t.Errorf("len(bobTodos): expected %d, got %d", e, g)
				}

				stored, err := todos.GetTodo(ctx, alice, todo.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Alice's secret", stored.Title(); e != g {
					t.Errorf("stored.Title(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateOnlyChangesMutableFields",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				todo := model.NewTodo(owner, "Draft", "first", referenceTime)

				if err := todos.CreateTodo(ctx, todo); err != nil {
					return errors.WithStack(err)
				}

				completedAt := referenceTime.Add(time.Hour)

				updated, err := todos.UpdateTodo(ctx, owner, todo.ID(), func(ctx context.Context, todo *model.BaseTodo) error {
					todo.SetTitle("Final")
					todo.SetMemo("second")
					todo.SetCompletedAt(completedAt)
					return nil
				})
				if err != nil {
					return errors.WithStack(err)
				}

				stored, err := todos.GetTodo(ctx, owner, todo.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				for _, tt := range []model.Todo{updated, stored} {
					if e, g := "Final", tt.Title(); e != g {
						t.Errorf("Title(): expected %s, got %s", e, g)
					}

					if e, g := "second", tt.Memo(); e != g {
						t.Errorf("Memo(): expected %s, got %s", e, g)
					}

					if e, g := owner, tt.OwnerID(); e != g {
						t.Errorf("OwnerID(): expected %s, got %s", e, g)
					}

					if !referenceTime.Equal(tt.CreatedAt()) {
						t.Errorf("CreatedAt(): expected %v, got %v", referenceTime, tt.CreatedAt())
					}

					if tt.CompletedAt() == nil || !completedAt.Equal(*tt.CompletedAt()) {
						t.Errorf("CompletedAt(): expected %v, got %v", completedAt, tt.CompletedAt())
					}
				}

				return nil
			},
		},
		{
			Name: "UpdateAbortedByError",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				todo := model.NewTodo(owner, "Unchanged", "memo", referenceTime)

				if err := todos.CreateTodo(ctx, todo); err != nil {
					return errors.WithStack(err)
				}

				errAbort := errors.New("abort")

				_, err = todos.UpdateTodo(ctx, owner, todo.ID(), func(ctx context.Context, todo *model.BaseTodo) error {
					todo.SetTitle("Changed")
					return errAbort
				})
				if !errors.Is(err, errAbort) {
					t.Errorf("UpdateTodo(): expected errAbort, got %+v", err)
				}

				stored, err := todos.GetTodo(ctx, owner, todo.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Unchanged", stored.Title(); e != g {
					t.Errorf("stored.Title(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "CompletedOrdering",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				// Completed in T1 < T2 < T3 order, but created in reverse
				ids := make([]model.TodoID, 3)
				for i := range 3 {
					todo := model.NewTodo(owner, fmt.Sprintf("todo #%d", i+1), "", referenceTime.Add(-time.Duration(i)*time.Hour))
					todo.SetCompletedAt(referenceTime.Add(time.Duration(i+1) * time.Minute))

					if err := todos.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}

					ids[i] = todo.ID()
				}

				if err := todos.CreateTodo(ctx, model.NewTodo(owner, "still active", "", referenceTime)); err != nil {
					return errors.WithStack(err)
				}

				completed := true

				results, err := todos.QueryTodos(ctx, owner, port.QueryTodosOptions{
					Completed: &completed,
					OrderBy:   port.TodoOrderCompletedAtDesc,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				expected := []model.TodoID{ids[2], ids[1], ids[0]}
				for i, e := range expected {
					if g := results[i].ID(); e != g {
						t.Errorf("results[%d].ID(): expected %s, got %s", i, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "CompletedOrderingSubSecond",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				ids := make(map[time.Duration]model.TodoID, len(subSecondOffsets))
				for _, offset := range subSecondOffsets {
					todo := model.NewTodo(owner, fmt.Sprintf("completed at +%s", offset), "", referenceTime)
					todo.SetCompletedAt(referenceTime.Add(offset))

					if err := todos.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}

					ids[offset] = todo.ID()
				}

				completed := true

				results, err := todos.QueryTodos(ctx, owner, port.QueryTodosOptions{
					Completed: &completed,
					OrderBy:   port.TodoOrderCompletedAtDesc,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				expected := sortedOffsets(true)

				if e, g := len(expected), len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				for i, offset := range expected {
					if e, g := ids[offset], results[i].ID(); e != g {
						t.Errorf("results[%d].ID(): expected todo completed at +%s, got %s", i, offset, results[i].Title())
					}

					if e, g := referenceTime.Add(offset), *results[i].CompletedAt(); !e.Equal(g) {
						t.Errorf("results[%d].CompletedAt(): expected %v, got %v", i, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "ActiveOrderingSubSecond",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				ids := make(map[time.Duration]model.TodoID, len(subSecondOffsets))
				for _, offset := range subSecondOffsets {
					todo := model.NewTodo(owner, fmt.Sprintf("created at +%s", offset), "", referenceTime.Add(offset))

					if err := todos.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}

					ids[offset] = todo.ID()
				}

				active := false

				results, err := todos.QueryTodos(ctx, owner, port.QueryTodosOptions{
					Completed: &active,
					OrderBy:   port.TodoOrderCreatedAtAsc,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				expected := sortedOffsets(false)

				if e, g := len(expected), len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				for i, offset := range expected {
					if e, g := ids[offset], results[i].ID(); e != g {
						t.Errorf("results[%d].ID(): expected todo created at +%s, got %s", i, offset, results[i].Title())
					}
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, todos port.TodoStore, users port.UserStore) error {
				owner, err := createOwner(ctx, users, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				todo := model.NewTodo(owner, "Ephemeral", "", referenceTime)

				if err := todos.CreateTodo(ctx, todo); err != nil {
					return errors.WithStack(err)
				}

				if err := todos.DeleteTodo(ctx, owner, todo.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := todos.GetTodo(ctx, owner, todo.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTodo(): expected ErrNotFound, got %+v", err)
				}

				if err := todos.DeleteTodo(ctx, owner, todo.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("DeleteTodo(): expected ErrNotFound on second delete, got %+v", err)
				}

				remaining, err := todos.QueryTodos(ctx, owner, port.QueryTodosOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(remaining); e != g {
					t.Errorf("len(remaining): expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			todos, users, err := factory(t)
			if err != nil {
				t.Fatalf("could not create stores: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, todos, users); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

func createOwner(ctx context.Context, users port.UserStore, username string) (model.UserID, error) {
	user := model.NewUser(username, "not-a-real-hash", referenceTime)

	if err := users.CreateUser(ctx, user); err != nil {
		return "", errors.WithStack(err)
	}

	return user.ID(), nil
}

// subSecondOffsets mixes whole and fractional seconds, in no particular
// order, with values sharing the same wall-clock second.
var subSecondOffsets = []time.Duration{
	1500 * time.Millisecond,
	120 * time.Millisecond,
	time.Second,
	0,
	100 * time.Millisecond,
	2 * time.Second,
	100*time.Millisecond + 1,
}

func sortedOffsets(desc bool) []time.Duration {
	sorted := slices.Clone(subSecondOffsets)
	slices.Sort(sorted)

	if desc {
		slices.Reverse(sorted)
	}

	return sorted
}
