package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Ins-V/simple-todo-list/models"
)

// TaskRepository is the repository for Task entities. Every query filters by
// the owning user id in addition to any primary key, so a task belonging to
// another user behaves exactly like a missing row.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task owned by t.UserID.
// Returns the stored task with its generated ID and timestamps.
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	if t == nil {
		return nil, errors.New("task is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO tasks (name, description, completed, user_id) VALUES (?, ?, ?, ?)`,
		t.Name, t.Description, t.Completed, t.UserID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	// Query back to capture created_at/updated_at
	t2, err := r.GetByID(ctx, id, t.UserID)
	if err != nil {
		return nil, err
	}
	if t2 == nil {
		return nil, fmt.Errorf("created task not found: id=%d", id)
	}
	return t2, nil
}

// GetByID fetches a task by its ID, scoped to the given owner.
// Returns (nil, nil) when no row matches the id+owner combination.
func (r *TaskRepository) GetByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var t models.Task
	err := r.db.QueryRowContext(ctx, `SELECT id, name, description, completed, created_at, updated_at, user_id FROM tasks WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&t.ID, &t.Name, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ListByUserID returns all tasks owned by userID ordered by id.
// A non-nil completed pointer additionally filters by completion state; nil
// means no filter, so completed=false can be requested explicitly.
func (r *TaskRepository) ListByUserID(ctx context.Context, userID int64, completed *bool) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT id, name, description, completed, created_at, updated_at, user_id FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if completed != nil {
		query += ` AND completed = ?`
		args = append(args, *completed)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaskRows(rows)
}

// Update overwrites name, description and completed of the task identified
// by t.ID and t.UserID, refreshing updated_at. Returns sql.ErrNoRows when the
// id+owner combination matches nothing.
func (r *TaskRepository) Update(ctx context.Context, t *models.Task) (*models.Task, error) {
	if t == nil {
		return nil, errors.New("task is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET name = ?, description = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`,
		t.Name, t.Description, t.Completed, t.ID, t.UserID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	t2, err := r.GetByID(ctx, t.ID, t.UserID)
	if err != nil {
		return nil, err
	}
	if t2 == nil {
		return nil, sql.ErrNoRows
	}
	return t2, nil
}

// Delete removes the task identified by id and owner. Returns sql.ErrNoRows
// when nothing was deleted, so a repeated delete surfaces as not found.
func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// scanTaskRows is a helper to scan rows into Task objects.
func scanTaskRows(rows *sql.Rows) ([]models.Task, error) {
	var out []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
