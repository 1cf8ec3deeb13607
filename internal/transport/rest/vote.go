package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
)

type voteService interface {
	GetVote(ctx context.Context, voteID uuid.UUID) (*domain.VoteDetail, error)
	UpdateVote(ctx context.Context, input voting.UpdateVoteInput) (*domain.VoteDetail, error)
}

// VoteHandler serves vote endpoints.
type VoteHandler struct {
	errorWriter
	votes voteService
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(votes voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		errorWriter: errorWriter{log: logger.With("handler", "vote")},
		votes:       votes,
	}
}

// Get handles GET /votes/{id}.
func (h *VoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	v, err := h.votes.GetVote(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoteResponse(*v))
}

// Update handles PUT /votes/{id}.
func (h *VoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	v, err := h.votes.UpdateVote(r.Context(), voting.UpdateVoteInput{VoteID: id, Status: req.Status})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoteResponse(*v))
}
