package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change pushed to a trip's live feed.
type EventType string

const (
	EventVoteUpdated   EventType = "vote.updated"
	EventItemCreated   EventType = "item.created"
	EventItemDeleted   EventType = "item.deleted"
	EventMemberAdded   EventType = "member.added"
	EventMemberRemoved EventType = "member.removed"
)

func (e EventType) String() string { return string(e) }

// TripEvent is a committed change on one trip. Only the ids relevant to the
// event type are set.
type TripEvent struct {
	Type       EventType
	TripID     uuid.UUID
	ItemID     *uuid.UUID
	VoteID     *uuid.UUID
	UserID     *uuid.UUID
	Status     *string
	OccurredAt time.Time
}

// Invitation asks the mail sender to tell a user they were added to a trip.
type Invitation struct {
	TripID    uuid.UUID
	TripName  string
	UserID    uuid.UUID
	InvitedBy *uuid.UUID
}
