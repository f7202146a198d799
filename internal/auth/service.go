package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Ins-V/simple-todo-list/models"
	"github.com/Ins-V/simple-todo-list/repository"
)

var (
	// ErrUnauthorized covers bad credentials and bad, expired or malformed
	// tokens. It deliberately carries no detail about which check failed.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrConflict is returned when registration hits an existing username or email.
	ErrConflict = errors.New("this user is already registered")
)

// Service implements registration, login and token verification on top of
// the user repository. It is stateless: all configuration is fixed at
// construction and every call receives its own context.
type Service struct {
	users  repository.UserRepositoryI
	secret string
	ttl    time.Duration
	cost   int
}

// NewService creates an auth Service. ttl bounds the lifetime of issued
// tokens; cost is the bcrypt work factor.
func NewService(users repository.UserRepositoryI, secret string, ttl time.Duration, cost int) *Service {
	return &Service{users: users, secret: secret, ttl: ttl, cost: cost}
}

// Register hashes the password, persists a new user and immediately issues a
// token for it. A duplicate username or email is reported as ErrConflict;
// the uniqueness check is the database constraint itself, so no ghost user
// can be created by a concurrent registration.
func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return "", err
	}
	u, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrConflict
		}
		return "", err
	}
	return CreateToken(s.secret, s.ttl, u.ID)
}

// Authenticate looks up the user by username and verifies the password.
// A missing user and a wrong password both yield ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !VerifyPassword(password, u.Password) {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// Login authenticates the credentials and issues a token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return CreateToken(s.secret, s.ttl, u.ID)
}

// CheckToken verifies the token and resolves its subject to an existing
// user. This is the sole authorization gate for protected operations; any
// failure (signature, expiry, unknown subject) collapses to ErrUnauthorized.
func (s *Service) CheckToken(ctx context.Context, tokenStr string) (*models.User, error) {
	id, err := ParseToken(tokenStr, s.secret)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}
