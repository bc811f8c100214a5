package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

// Register validates the registration fields in order, short-circuiting on
// the first failure, then persists a new user with a hashed password.
// The pre-insert lookup is advisory: two concurrent registrations can both
// pass it, so the repo's uniqueness guarantee is what actually holds.
func (s *Service) Register(ctx context.Context, name, email, password, confirmPassword string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	if confirmPassword == "" {
		return domain.User{}, domain.ErrMissingField("confirmPassword")
	}
	if password != confirmPassword {
		return domain.User{}, domain.ErrPasswordMismatch()
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailInUse()
	} else if !domain.Is(err, "user_not_found") {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		if domain.Is(err, "email_in_use") {
			return domain.User{}, err
		}
		return domain.User{}, domain.ErrStoreWriteFailed(err)
	}
	return created, nil
}
