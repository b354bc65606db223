package handler

import (
	"errors"
	"net/http"
	"time"

	authndomain "welfare-app-go/internal/domain/authn"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func toUserResponse(account *authndomain.Account) userResponse {
	return userResponse{
		ID:        account.ID,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	account, err := h.Auth.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, authndomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "email, password, and role are required")
		case errors.Is(err, authndomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "role must be family, officer, or admin")
		case errors.Is(err, authndomain.ErrDuplicateEmail):
			h.log.BusinessError("auth.register: duplicate email", err, "email", req.Email)
			writeError(w, http.StatusConflict, "user with this email already exists")
		default:
			h.log.InternalError("auth.register: register failed", err, "email", req.Email)
			writeError(w, http.StatusInternalServerError, "server error during registration")
		}
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully!",
		User:    toUserResponse(account),
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	account, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authndomain.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.log.InternalError("auth.login: login failed", err)
		writeError(w, http.StatusInternalServerError, "server error during login")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message: "Logged in successfully!",
		User:    toUserResponse(account),
	})
}
