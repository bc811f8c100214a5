package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	r := NewUserRepo()

	u, err := r.Create(context.Background(), domain.User{
		ID: "u1", Name: "Ana", Email: " A@X.com ", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create err: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}

	got, err := r.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("get by email err: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	got, err = r.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get by id err: %v", err)
	}
	if got.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepo_NotFound(t *testing.T) {
	t.Parallel()

	r := NewUserRepo()

	if _, err := r.GetByEmail(context.Background(), "nope@x.com"); !domain.Is(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
	if _, err := r.GetByID(context.Background(), "nope"); !domain.Is(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}

func TestUserRepo_DuplicateEmail_EmailInUse(t *testing.T) {
	t.Parallel()

	r := NewUserRepo()

	if _, err := r.Create(context.Background(), domain.User{ID: "u1", Email: "a@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("create err: %v", err)
	}
	_, err := r.Create(context.Background(), domain.User{ID: "u2", Email: "A@x.com", PasswordHash: "h"})
	if !domain.Is(err, "email_in_use") {
		t.Fatalf("expected email_in_use, got %v", err)
	}
}

func TestUserRepo_ConcurrentCreate_OnlyOneWins(t *testing.T) {
	t.Parallel()

	r := NewUserRepo()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Create(context.Background(), domain.User{
				ID: "u" + string(rune('a'+i)), Email: "same@x.com", PasswordHash: "h",
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else if !domain.Is(err, "email_in_use") {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one winner, got %d", ok)
	}
}
