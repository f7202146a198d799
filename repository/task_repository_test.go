package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Ins-V/simple-todo-list/internal/db"
	"github.com/Ins-V/simple-todo-list/models"
)

func openTaskTestDB(t *testing.T, name string) (*TaskRepository, *UserRepository) {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return NewTaskRepository(d), NewUserRepository(d)
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	tasks, users := openTaskTestDB(t, "taskrepo")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice", "a@x.com", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	created, err := tasks.Create(ctx, &models.Task{Name: "buy milk", Description: "2%", UserID: u.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.ID == 0 || created.Completed || created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("unexpected created task: %+v", created)
	}

	got, err := tasks.GetByID(ctx, created.ID, u.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v %+v", err, got)
	}
	if got.Name != "buy milk" || got.Description != "2%" || got.UserID != u.ID {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestTaskRepository_OwnerScoping(t *testing.T) {
	tasks, users := openTaskTestDB(t, "taskrepoowner")
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", "a@x.com", "h")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := users.Create(ctx, "bob", "b@x.com", "h")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	task, err := tasks.Create(ctx, &models.Task{Name: "secret", UserID: alice.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// Bob cannot see, update or delete Alice's task; all behave like a missing row.
	if got, err := tasks.GetByID(ctx, task.ID, bob.ID); err != nil || got != nil {
		t.Fatalf("expected nil for foreign task, got %+v err=%v", got, err)
	}
	_, err = tasks.Update(ctx, &models.Task{ID: task.ID, Name: "stolen", UserID: bob.ID})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows updating foreign task, got %v", err)
	}
	if err := tasks.Delete(ctx, task.ID, bob.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows deleting foreign task, got %v", err)
	}

	// The task is untouched for its owner.
	got, err := tasks.GetByID(ctx, task.ID, alice.ID)
	if err != nil || got == nil || got.Name != "secret" {
		t.Fatalf("owner lost access: %v %+v", err, got)
	}
}

func TestTaskRepository_ListByUserIDFilter(t *testing.T) {
	tasks, users := openTaskTestDB(t, "taskrepolist")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice", "a@x.com", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	other, err := users.Create(ctx, "bob", "b@x.com", "h")
	if err != nil {
		t.Fatalf("create other: %v", err)
	}

	for _, seed := range []struct {
		name      string
		completed bool
		owner     int64
	}{
		{"one", false, u.ID},
		{"two", true, u.ID},
		{"three", false, u.ID},
		{"foreign", false, other.ID},
	} {
		if _, err := tasks.Create(ctx, &models.Task{Name: seed.name, Completed: seed.completed, UserID: seed.owner}); err != nil {
			t.Fatalf("create %s: %v", seed.name, err)
		}
	}

	all, err := tasks.ListByUserID(ctx, u.ID, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %v len=%d", err, len(all))
	}
	for _, task := range all {
		if task.UserID != u.ID {
			t.Fatalf("foreign task leaked into list: %+v", task)
		}
	}

	yes := true
	done, err := tasks.ListByUserID(ctx, u.ID, &yes)
	if err != nil || len(done) != 1 || done[0].Name != "two" {
		t.Fatalf("list completed: %v %+v", err, done)
	}

	// completed=false is a real filter, not "no filter".
	no := false
	todo, err := tasks.ListByUserID(ctx, u.ID, &no)
	if err != nil || len(todo) != 2 {
		t.Fatalf("list incomplete: %v len=%d", err, len(todo))
	}
}

func TestTaskRepository_UpdateAndDelete(t *testing.T) {
	tasks, users := openTaskTestDB(t, "taskrepoupd")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice", "a@x.com", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	task, err := tasks.Create(ctx, &models.Task{Name: "draft", Description: "v1", UserID: u.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	upd, err := tasks.Update(ctx, &models.Task{ID: task.ID, Name: "final", Description: "v2", Completed: true, UserID: u.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Name != "final" || upd.Description != "v2" || !upd.Completed {
		t.Fatalf("fields not replaced: %+v", upd)
	}
	if upd.UpdatedAt.Before(task.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %s -> %s", task.UpdatedAt, upd.UpdatedAt)
	}

	if err := tasks.Delete(ctx, task.ID, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Second delete reports not found.
	if err := tasks.Delete(ctx, task.ID, u.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows on repeated delete, got %v", err)
	}
	if _, err := tasks.Update(ctx, &models.Task{ID: task.ID, Name: "x", UserID: u.ID}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows updating deleted task, got %v", err)
	}
}
