package rest

import "net/http"

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Health *HealthHandler
	Trips  *TripHandler
	Items  *ItemHandler
	Votes  *VoteHandler
	Users  *UserHandler
	// Feed upgrades GET /trips/{id}/events to a websocket. Optional.
	Feed http.Handler
}

// Register mounts the route table on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /trips", h.Trips.List)
	mux.HandleFunc("POST /trips", h.Trips.Create)
	mux.HandleFunc("GET /trips/{id}", h.Trips.Get)
	mux.HandleFunc("PUT /trips/{id}", h.Trips.Update)
	mux.HandleFunc("DELETE /trips/{id}", h.Trips.Delete)
	mux.HandleFunc("POST /trips/{id}/collaborators", h.Trips.AddCollaborator)
	mux.HandleFunc("DELETE /trips/{id}/collaborators/{userId}", h.Trips.RemoveCollaborator)
	mux.HandleFunc("POST /trips/{id}/reconcile", h.Trips.Reconcile)

	mux.HandleFunc("POST /trips/{id}/items", h.Items.Create)
	mux.HandleFunc("GET /trips/{id}/items/{itemId}", h.Items.Get)
	mux.HandleFunc("DELETE /trips/{id}/items/{itemId}", h.Items.Delete)
	mux.HandleFunc("PUT /items/{id}", h.Items.Update)

	mux.HandleFunc("GET /votes/{id}", h.Votes.Get)
	mux.HandleFunc("PUT /votes/{id}", h.Votes.Update)

	mux.HandleFunc("GET /users", h.Users.List)
	mux.HandleFunc("POST /users", h.Users.Register)
	mux.HandleFunc("GET /users/{id}", h.Users.Get)

	if h.Feed != nil {
		mux.Handle("GET /trips/{id}/events", h.Feed)
	}
}
