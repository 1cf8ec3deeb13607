package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the root aggregate: a named plan owned by a leader and shared with
// collaborators.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Location  *string
	LeaderID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberRole distinguishes the trip leader from ordinary collaborators.
type MemberRole string

const (
	MemberRoleLeader       MemberRole = "leader"
	MemberRoleCollaborator MemberRole = "collaborator"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleLeader, MemberRoleCollaborator:
		return true
	}
	return false
}

// Member is one row of the membership ledger.
type Member struct {
	TripID    uuid.UUID
	UserID    uuid.UUID
	Role      MemberRole
	CreatedAt time.Time
}

// MemberIDs returns the user ids of members in ledger order.
func MemberIDs(members []Member) []uuid.UUID {
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	return ids
}

// MembershipSnapshot returns leader followed by collaborators with duplicates
// and nil ids removed. The leader is always first.
func MembershipSnapshot(leaderID uuid.UUID, collaborators []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(collaborators)+1)
	out := make([]uuid.UUID, 0, len(collaborators)+1)

	add := func(id uuid.UUID) {
		if id == uuid.Nil {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	add(leaderID)
	for _, id := range collaborators {
		add(id)
	}
	return out
}

// TripFilter narrows ListTrips. Zero value lists every trip.
type TripFilter struct {
	IDs      []uuid.UUID
	MemberID *uuid.UUID
}

// TripUpdateParams carries the scalar columns of a trip patch. Nil means
// unchanged; ptr("") on Location clears it. ClearStartDate and ClearEndDate
// null the date and win over a date set in the same patch.
type TripUpdateParams struct {
	Name           *string
	StartDate      *time.Time
	EndDate        *time.Time
	ClearStartDate bool
	ClearEndDate   bool
	Location       *string
}

// IsEmpty reports whether no column would change.
func (p TripUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.StartDate == nil && p.EndDate == nil &&
		!p.ClearStartDate && !p.ClearEndDate && p.Location == nil
}
