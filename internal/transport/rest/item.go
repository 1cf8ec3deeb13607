package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/internal/service/itinerary"
)

type itemService interface {
	CreateItem(ctx context.Context, input itinerary.CreateItemInput) (*domain.ItemDetail, error)
	GetItem(ctx context.Context, tripID, itemID uuid.UUID) (*domain.ItemDetail, error)
	UpdateItem(ctx context.Context, input itinerary.UpdateItemInput) (*domain.ItemDetail, error)
	DeleteItem(ctx context.Context, tripID, itemID uuid.UUID) error
}

// ItemHandler serves itinerary item endpoints.
type ItemHandler struct {
	errorWriter
	items itemService
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(items itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		errorWriter: errorWriter{log: logger.With("handler", "item")},
		items:       items,
	}
}

// Create handles POST /trips/{id}/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.items.CreateItem(r.Context(), itinerary.CreateItemInput{
		TripID:    tripID,
		Type:      domain.ItemType(req.Type),
		Name:      req.Name,
		Confirmed: req.Confirmed,
		Price:     req.Price,
		Location:  req.Location,
		Website:   req.Website,
		Flight:    req.Flight,
		Lodging:   req.Lodging,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(*item))
}

// Get handles GET /trips/{id}/items/{itemId}. Votes carry their voters.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.items.GetItem(r.Context(), tripID, itemID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.items.UpdateItem(r.Context(), itinerary.UpdateItemInput{
		ItemID:    itemID,
		Name:      req.Name,
		Confirmed: req.Confirmed,
		Price:     req.Price,
		Location:  req.Location,
		Website:   req.Website,
		Flight:    req.Flight,
		Lodging:   req.Lodging,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// Delete handles DELETE /trips/{id}/items/{itemId}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.items.DeleteItem(r.Context(), tripID, itemID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
