package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/auth"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/user"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

type passwordService interface {
	ChangePassword(ctx context.Context, input user.ChangePasswordInput) error
}

// AuthHandler serves login and password change.
type AuthHandler struct {
	auth      authService
	passwords passwordService
	log       *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc authService, passwords passwordService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, passwords: passwords, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	DocumentID string `json:"document_id"`
	Password   string `json:"password"`
}

type loginResponse struct {
	AccessToken        string       `json:"access_token"`
	TokenType          string       `json:"token_type"`
	User               userResponse `json:"user"`
	MustChangePassword bool         `json:"must_change_password"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Login(r.Context(), auth.LoginInput{DocumentID: req.DocumentID, Password: req.Password})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:        result.AccessToken,
		TokenType:          "Bearer",
		User:               toUserResponse(result.User),
		MustChangePassword: result.MustChangePassword,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword handles POST /auth/password for the calling user.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	err := h.passwords.ChangePassword(r.Context(), user.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type userService interface {
	Register(ctx context.Context, input user.RegisterInput) (*user.RegisterResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	ToggleActive(ctx context.Context, id int64) (*domain.User, error)
	ChangeRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
}

// UserHandler serves user administration.
type UserHandler struct {
	users userService
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: logger.With("handler", "user")}
}

type registerRequest struct {
	DocumentID string `json:"document_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
}

type registerResponse struct {
	User         userResponse `json:"user"`
	TempPassword string       `json:"temp_password"`
}

// Register handles POST /users. The temporary password is only ever shown
// in this response.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.users.Register(r.Context(), user.RegisterInput{
		DocumentID: req.DocumentID,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       domain.Role(req.Role),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		User:         toUserResponse(result.User),
		TempPassword: result.TempPassword,
	})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(mapSlice(users, toUserResponse)))
}

// ToggleActive handles POST /users/{id}/toggle-active.
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	u, err := h.users.ToggleActive(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole handles PUT /users/{id}/role.
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req changeRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	u, err := h.users.ChangeRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
