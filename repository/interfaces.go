package repository

import (
	"context"

	"github.com/Ins-V/simple-todo-list/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepositoryI defines operations on Task entities. Every read and write
// is scoped by the owning user id so that another user's tasks are
// indistinguishable from absent ones.
type TaskRepositoryI interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Task, error)
	ListByUserID(ctx context.Context, userID int64, completed *bool) ([]models.Task, error)
	Update(ctx context.Context, t *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}
