package repository

import "errors"

// ErrDuplicate is returned when an insert violates a unique constraint
// (e.g., username or email already taken).
var ErrDuplicate = errors.New("record already exists")
