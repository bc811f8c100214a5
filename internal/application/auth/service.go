package auth

import (
	"time"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	// AccessTTL bounds issued token lifetimes. Zero issues tokens
	// without an expiry claim.
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: cfg.AccessTTL,
	}
}

type LoginResult struct {
	User  domain.User
	Token string
}
