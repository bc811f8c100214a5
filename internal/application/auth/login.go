package auth

import (
	"context"
	"strings"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration):
// unknown email and wrong password both return invalid_credentials.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	token, err := s.signer.SignAccessToken(u.ID, s.accessTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{User: u, Token: token}, nil
}
