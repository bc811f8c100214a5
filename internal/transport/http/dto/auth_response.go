package dto

import (
	"time"

	"github.com/DjorgeSilva/login-service/internal/domain"
)

type RegisterResponse struct {
	Msg string `json:"msg"` // "user created successfully"
}

type LoginResponse struct {
	Msg   string `json:"msg"` // "logged successfully"
	Token string `json:"token"`
}

// UserView is the outward user projection. It deliberately has no password
// field, so no response can carry the hash.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserData struct {
	User UserView `json:"user"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
