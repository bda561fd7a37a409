package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/auswiki/auswiki/internal/wiki/service"
	"github.com/auswiki/auswiki/pkg/httpx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

// AuthHandler serves /auth/register and /auth/login.
type AuthHandler struct {
	Auth *service.AuthService
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	res, err := h.Auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingField):
		writeError(w, http.StatusBadRequest, codeBadRequest, "username and password are required")
		return
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, codeUsernameTaken, "username is already taken")
		return
	default:
		slogx.FromContext(r.Context()).Error("register failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		UserID:   res.UserID,
		Username: res.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	res, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingField):
		writeError(w, http.StatusBadRequest, codeBadRequest, "username and password are required")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		// Same response for unknown user and wrong password.
		writeError(w, http.StatusBadRequest, codeInvalidCreds, "invalid username or password")
		return
	default:
		slogx.FromContext(r.Context()).Error("login failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		Username:  res.Username,
		ExpiresIn: int64(res.ExpiresIn.Seconds()),
	})
}
