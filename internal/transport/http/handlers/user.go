package http_handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/DjorgeSilva/login-service/internal/application/auth"
	"github.com/DjorgeSilva/login-service/internal/domain"
	"github.com/DjorgeSilva/login-service/internal/transport/http/dto"
	"github.com/DjorgeSilva/login-service/internal/transport/http/response"
)

type UserHandler struct {
	svc *auth.Service
}

func NewUserHandler(svc *auth.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetByID handles GET /user/{id}. The auth middleware has already verified
// the bearer token before this runs.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		response.WriteError(w, r, domain.ErrMissingField("id"))
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.UserData{User: dto.NewUserView(u)})
}
