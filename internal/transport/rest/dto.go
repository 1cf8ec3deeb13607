package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createTripRequest struct {
	Name          string   `json:"name"          validate:"required,max=200"`
	StartDate     *string  `json:"startDate"     validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string  `json:"endDate"       validate:"omitempty,datetime=2006-01-02"`
	Location      *string  `json:"location"      validate:"omitempty,max=500"`
	TripLeader    string   `json:"tripLeader"    validate:"required,uuid"`
	Collaborators []string `json:"collaborators" validate:"omitempty,dive,uuid"`
}

type updateTripRequest struct {
	ID            *string   `json:"id"            validate:"omitempty,uuid"`
	Name          *string   `json:"name"          validate:"omitempty,max=200"`
	StartDate     *string   `json:"startDate"     validate:"omitempty,patchdate"`
	EndDate       *string   `json:"endDate"       validate:"omitempty,patchdate"`
	Location      *string   `json:"location"      validate:"omitempty,max=500"`
	Collaborators *[]string `json:"collaborators" validate:"omitempty,dive,uuid"`
}

type addCollaboratorRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type createItemRequest struct {
	Type      string                 `json:"type"      validate:"required,oneof=flight lodging restaurant activity other"`
	Name      string                 `json:"name"      validate:"required,max=200"`
	Confirmed bool                   `json:"confirmed"`
	Price     *string                `json:"price"     validate:"omitempty,max=500"`
	Location  *string                `json:"location"  validate:"omitempty,max=500"`
	Website   *string                `json:"website"   validate:"omitempty,max=500"`
	Flight    *domain.FlightDetails  `json:"flight"`
	Lodging   *domain.LodgingDetails `json:"lodging"`
}

type updateItemRequest struct {
	Name      *string                `json:"name"      validate:"omitempty,max=200"`
	Confirmed *bool                  `json:"confirmed"`
	Price     *string                `json:"price"     validate:"omitempty,max=500"`
	Location  *string                `json:"location"  validate:"omitempty,max=500"`
	Website   *string                `json:"website"   validate:"omitempty,max=500"`
	Flight    *domain.FlightDetails  `json:"flight"`
	Lodging   *domain.LodgingDetails `json:"lodging"`
}

type updateVoteRequest struct {
	Status string `json:"status" validate:"required"`
}

type registerRequest struct {
	Username  string `json:"username"  validate:"required,min=3,max=50"`
	Password  string `json:"password"  validate:"required,min=10,max=72"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName"  validate:"max=100"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type userSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type userResponse struct {
	userSummary
	Trips []string `json:"trips"`
}

type voteResponse struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"itemId"`
	UserID    string       `json:"userId"`
	Status    string       `json:"status"`
	User      *userSummary `json:"user,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type consensusResponse struct {
	Total     int            `json:"total"`
	Pending   int            `json:"pending"`
	Cast      int            `json:"cast"`
	Counts    map[string]int `json:"counts"`
	Confirmed bool           `json:"confirmed"`
}

type itemResponse struct {
	ID        string                 `json:"id"`
	TripID    string                 `json:"tripId"`
	Type      string                 `json:"type"`
	Name      string                 `json:"name"`
	Confirmed bool                   `json:"confirmed"`
	Price     *string                `json:"price,omitempty"`
	Location  *string                `json:"location,omitempty"`
	Website   *string                `json:"website,omitempty"`
	Flight    *domain.FlightDetails  `json:"flight,omitempty"`
	Lodging   *domain.LodgingDetails `json:"lodging,omitempty"`
	Position  int                    `json:"position"`
	Votes     []voteResponse         `json:"votes"`
	Consensus consensusResponse      `json:"consensus"`
}

type tripResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	StartDate      *string        `json:"startDate,omitempty"`
	EndDate        *string        `json:"endDate,omitempty"`
	Location       *string        `json:"location,omitempty"`
	TripLeader     userSummary    `json:"tripLeader"`
	Collaborators  []userSummary  `json:"collaborators"`
	ItineraryItems []itemResponse `json:"itineraryItems"`
}

type reconcileResponse struct {
	Created int `json:"created"`
	Removed int `json:"removed"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toUserSummary(u domain.User) userSummary {
	return userSummary{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toUserResponse(u domain.UserWithTrips) userResponse {
	return userResponse{userSummary: toUserSummary(u.User), Trips: idStrings(u.TripIDs)}
}

func toVoteResponse(v domain.VoteDetail) voteResponse {
	resp := voteResponse{
		ID:        v.ID.String(),
		ItemID:    v.ItemID.String(),
		UserID:    v.UserID.String(),
		Status:    v.Status,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Voter != nil {
		s := toUserSummary(*v.Voter)
		resp.User = &s
	}
	return resp
}

func toItemResponse(d domain.ItemDetail) itemResponse {
	votes := make([]voteResponse, len(d.Votes))
	for i, v := range d.Votes {
		votes[i] = toVoteResponse(v)
	}
	counts := d.Consensus.Counts
	if counts == nil {
		counts = map[string]int{}
	}
	return itemResponse{
		ID:        d.ID.String(),
		TripID:    d.TripID.String(),
		Type:      d.Type.String(),
		Name:      d.Name,
		Confirmed: d.Confirmed,
		Price:     d.Price,
		Location:  d.Location,
		Website:   d.Website,
		Flight:    d.Details.Flight,
		Lodging:   d.Details.Lodging,
		Position:  d.Position,
		Votes:     votes,
		Consensus: consensusResponse{
			Total:     d.Consensus.Total,
			Pending:   d.Consensus.Pending,
			Cast:      d.Consensus.Cast,
			Counts:    counts,
			Confirmed: d.Consensus.Confirmed,
		},
	}
}

func toTripResponse(t domain.TripDetail) tripResponse {
	collaborators := make([]userSummary, len(t.Collaborators))
	for i, u := range t.Collaborators {
		collaborators[i] = toUserSummary(u)
	}
	items := make([]itemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = toItemResponse(it)
	}
	return tripResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		StartDate:      formatDate(t.StartDate),
		EndDate:        formatDate(t.EndDate),
		Location:       t.Location,
		TripLeader:     toUserSummary(t.Leader),
		Collaborators:  collaborators,
		ItineraryItems: items,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
