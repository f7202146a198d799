package models

import "time"

// Task represents a single to-do item owned by a user.
// It maps to the `tasks` table in SQLite. UpdatedAt is refreshed on every
// mutation by the repository layer.
type Task struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated"`
	UserID      int64     `db:"user_id" json:"user_id"`
}
