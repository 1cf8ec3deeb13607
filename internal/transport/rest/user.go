package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/user"
)

type userService interface {
	Register(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.UserWithTrips, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserHandler serves user directory endpoints.
type UserHandler struct {
	errorWriter
	users userService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		errorWriter: errorWriter{log: logger.With("handler", "user")},
		users:       users,
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]userSummary, len(users))
	for i, u := range users {
		resp[i] = toUserSummary(u)
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": resp})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.users.Register(r.Context(), user.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserSummary(*u))
}
