package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusPending is the status of a vote nobody has cast yet.
const StatusPending = ""

// Vote is one collaborator's opinion on one item. The (ItemID, UserID) pair is
// fixed at creation.
type Vote struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the vote has not been cast.
func (v Vote) IsPending() bool { return v.Status == StatusPending }

// Consensus summarises the live vote set of an item. It is derived on every
// read and never stored.
type Consensus struct {
	Total     int
	Pending   int
	Cast      int
	Counts    map[string]int
	Confirmed bool
}

// ComputeConsensus tallies votes by status. The item is confirmed when at
// least one vote exists and every vote equals agreeStatus.
func ComputeConsensus(votes []Vote, agreeStatus string) Consensus {
	c := Consensus{
		Total:  len(votes),
		Counts: make(map[string]int),
	}
	for _, v := range votes {
		c.Counts[v.Status]++
		if v.IsPending() {
			c.Pending++
		} else {
			c.Cast++
		}
	}
	c.Confirmed = c.Total > 0 && agreeStatus != StatusPending && c.Counts[agreeStatus] == c.Total
	return c
}
