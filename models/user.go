package models

import "time"

// User represents a registered account.
// It maps to the `users` table in SQLite. Password always holds a bcrypt
// hash, never plaintext, and is excluded from JSON output.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created"`
}
