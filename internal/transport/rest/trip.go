package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/trip"
	"github.com/heartmarshall/tripvote-backend/internal/service/voting"
)

type tripService interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.TripDetail, error)
	ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.TripDetail, error)
	CreateTrip(ctx context.Context, input trip.CreateTripInput) (*domain.TripDetail, error)
	UpdateTrip(ctx context.Context, input trip.UpdateTripInput) (*domain.TripDetail, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type membershipService interface {
	AddCollaborator(ctx context.Context, tripID, userID uuid.UUID) error
	RemoveCollaborator(ctx context.Context, tripID, userID uuid.UUID) error
}

type reconciler interface {
	Reconcile(ctx context.Context, tripID uuid.UUID) (voting.ReconcileResult, error)
}

// TripHandler serves trip, collaborator and reconcile endpoints.
type TripHandler struct {
	errorWriter
	trips   tripService
	members membershipService
	votes   reconciler
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(trips tripService, members membershipService, votes reconciler, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		errorWriter: errorWriter{log: logger.With("handler", "trip")},
		trips:       trips,
		members:     members,
		votes:       votes,
	}
}

// List handles GET /trips[?ids=a,b&member=id].
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := tripFilterFromQuery(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	trips, err := h.trips.ListTrips(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]tripResponse, len(trips))
	for i, t := range trips {
		resp[i] = toTripResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"trips": resp})
}

// Get handles GET /trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.trips.GetTrip(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(*t))
}

// Create handles POST /trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.trips.CreateTrip(r.Context(), trip.CreateTripInput{
		Name:            req.Name,
		StartDate:       parseDate(req.StartDate),
		EndDate:         parseDate(req.EndDate),
		Location:        req.Location,
		LeaderID:        uuid.MustParse(req.TripLeader),
		CollaboratorIDs: parseUUIDs(req.Collaborators),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTripResponse(*t))
}

// Update handles PUT /trips/{id}.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := trip.UpdateTripInput{
		ID:             id,
		Name:           req.Name,
		StartDate:      parseDate(req.StartDate),
		EndDate:        parseDate(req.EndDate),
		ClearStartDate: isBlank(req.StartDate),
		ClearEndDate:   isBlank(req.EndDate),
		Location:       req.Location,
	}
	if req.ID != nil {
		bodyID := uuid.MustParse(*req.ID)
		input.BodyID = &bodyID
	}
	if req.Collaborators != nil {
		ids := parseUUIDs(*req.Collaborators)
		input.CollaboratorIDs = &ids
	}

	t, err := h.trips.UpdateTrip(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(*t))
}

// Delete handles DELETE /trips/{id}.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.trips.DeleteTrip(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddCollaborator handles POST /trips/{id}/collaborators.
func (h *TripHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req addCollaboratorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.members.AddCollaborator(r.Context(), tripID, uuid.MustParse(req.UserID)); err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(*t))
}

// RemoveCollaborator handles DELETE /trips/{id}/collaborators/{userId}.
func (h *TripHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	userID, err := pathUUID(r, "userId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.members.RemoveCollaborator(r.Context(), tripID, userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reconcile handles POST /trips/{id}/reconcile.
func (h *TripHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.votes.Reconcile(r.Context(), tripID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reconcileResponse{Created: res.Created, Removed: res.Removed})
}

func tripFilterFromQuery(r *http.Request) (domain.TripFilter, error) {
	var filter domain.TripFilter
	q := r.URL.Query()

	for _, raw := range q["ids"] {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return filter, domain.NewValidationError("ids", "must be a comma-separated list of uuids")
			}
			filter.IDs = append(filter.IDs, id)
		}
	}

	if m := q.Get("member"); m != "" {
		id, err := uuid.Parse(m)
		if err != nil {
			return filter, domain.NewValidationError("member", "must be a uuid")
		}
		filter.MemberID = &id
	}

	return filter, nil
}
