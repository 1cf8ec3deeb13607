// Package realtime pushes committed trip changes to websocket subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 32
)

// tripReader checks that a trip exists before a subscription is accepted.
type tripReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

// EventMessage is the JSON frame sent to subscribers.
type EventMessage struct {
	Type       string    `json:"type"`
	TripID     string    `json:"tripId"`
	ItemID     *string   `json:"itemId,omitempty"`
	VoteID     *string   `json:"voteId,omitempty"`
	UserID     *string   `json:"userId,omitempty"`
	Status     *string   `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type subscriber struct {
	tripID uuid.UUID
	send   chan []byte
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// Hub fans trip events out to the websocket connections watching each trip.
type Hub struct {
	log      *slog.Logger
	trips    tripReader
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*subscriber]struct{}
	closed bool
}

// NewHub creates a hub. allowedOrigins uses the CORS list format; "*"
// accepts any origin.
func NewHub(logger *slog.Logger, trips tripReader, allowedOrigins string) *Hub {
	origins := strings.Split(allowedOrigins, ",")
	return &Hub{
		log:   logger.With("component", "realtime"),
		trips: trips,
		subs:  make(map[uuid.UUID]map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, o := range origins {
					o = strings.TrimSpace(o)
					if o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// Publish delivers ev to every subscriber of ev.TripID. Slow subscribers
// whose buffer is full are disconnected.
func (h *Hub) Publish(ctx context.Context, ev domain.TripEvent) {
	payload, err := json.Marshal(toMessage(ev))
	if err != nil {
		h.log.ErrorContext(ctx, "marshal trip event", slog.String("error", err.Error()))
		return
	}

	var slow []*subscriber
	h.mu.RLock()
	for sub := range h.subs[ev.TripID] {
		select {
		case sub.send <- payload:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range slow {
		h.log.WarnContext(ctx, "dropping slow subscriber", slog.String("trip_id", ev.TripID.String()))
		h.unsubscribe(sub)
	}
}

// Subscribers returns the number of live connections watching tripID.
func (h *Hub) Subscribers(tripID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[tripID])
}

// Close disconnects every subscriber and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for tripID, set := range h.subs {
		for sub := range set {
			sub.close()
		}
		delete(h.subs, tripID)
	}
}

// ServeHTTP upgrades GET /trips/{id}/events to a websocket that streams the
// trip's events. Unknown trips are answered with 404 before upgrading.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	if _, err := h.trips.GetByID(r.Context(), tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		h.log.ErrorContext(r.Context(), "load trip for feed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.WarnContext(r.Context(), "websocket upgrade", slog.String("error", err.Error()))
		return
	}

	sub, ok := h.subscribe(tripID)
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	h.log.DebugContext(r.Context(), "feed subscribed", slog.String("trip_id", tripID.String()))

	go h.writePump(conn, sub)
	h.readPump(conn, sub)
}

func (h *Hub) subscribe(tripID uuid.UUID) (*subscriber, bool) {
	sub := &subscriber{tripID: tripID, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	set, ok := h.subs[tripID]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subs[tripID] = set
	}
	set[sub] = struct{}{}
	return sub, true
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[sub.tripID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			sub.close()
		}
		if len(set) == 0 {
			delete(h.subs, sub.tripID)
		}
	}
}

// readPump discards client frames and keeps the pong deadline fresh. It
// returns when the connection fails or the client closes it.
func (h *Hub) readPump(conn *websocket.Conn, sub *subscriber) {
	defer func() {
		h.unsubscribe(sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func toMessage(ev domain.TripEvent) EventMessage {
	return EventMessage{
		Type:       ev.Type.String(),
		TripID:     ev.TripID.String(),
		ItemID:     idString(ev.ItemID),
		VoteID:     idString(ev.VoteID),
		UserID:     idString(ev.UserID),
		Status:     ev.Status,
		OccurredAt: ev.OccurredAt,
	}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
