package dto

// RegisterRequest is the body of POST /auth/register. Field presence and
// ordering of the checks are enforced by the auth service, which owns the
// validation contract.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body of POST /auth/user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
