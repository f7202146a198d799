package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ins-V/simple-todo-list/internal/testutil"
	"github.com/Ins-V/simple-todo-list/repository"
)

func newTestService(t *testing.T, name string) (*Service, *repository.UserRepository) {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	users := repository.NewUserRepository(d)
	return NewService(users, testSecret, 300*time.Second, bcrypt.MinCost), users
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc, _ := newTestService(t, "authsvc")
	ctx := context.Background()

	tok, err := svc.Register(ctx, "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// The registration token resolves back to the created user.
	u, err := svc.CheckToken(ctx, tok)
	if err != nil {
		t.Fatalf("check registration token: %v", err)
	}
	if u.Username != "alice" || u.Email != "a@x.com" {
		t.Fatalf("token resolved to wrong user: %+v", u)
	}
	if u.Password == "pw1" {
		t.Fatalf("password stored in plaintext")
	}

	// So does a login token.
	tok2, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	u2, err := svc.CheckToken(ctx, tok2)
	if err != nil || u2.ID != u.ID {
		t.Fatalf("login token mismatch: %v %+v", err, u2)
	}
}

func TestService_AuthenticateFailures(t *testing.T) {
	svc, _ := newTestService(t, "authsvcfail")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown user and wrong password yield the same error.
	_, errMissing := svc.Authenticate(ctx, "nobody", "pw1")
	_, errWrongPw := svc.Authenticate(ctx, "alice", "bad")
	if !errors.Is(errMissing, ErrUnauthorized) || !errors.Is(errWrongPw, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for both failures, got %v / %v", errMissing, errWrongPw)
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc, _ := newTestService(t, "authsvcdup")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "alice", "other@x.com", "pw2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "a@x.com", "pw2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestService_CheckTokenFailures(t *testing.T) {
	svc, users := newTestService(t, "authsvctoken")
	ctx := context.Background()

	tok, err := svc.Register(ctx, "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u, err := svc.CheckToken(ctx, tok)
	if err != nil {
		t.Fatalf("check token: %v", err)
	}

	// Expired token
	expired := testutil.GenerateToken(t, testSecret, u.ID, -time.Second)
	if _, err := svc.CheckToken(ctx, expired); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}

	// Token signed with a different secret
	forged := testutil.GenerateToken(t, "other-secret", u.ID, time.Minute)
	if _, err := svc.CheckToken(ctx, forged); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for forged token, got %v", err)
	}

	// Valid token whose subject no longer exists
	if err := users.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.CheckToken(ctx, tok); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for deleted subject, got %v", err)
	}
}
