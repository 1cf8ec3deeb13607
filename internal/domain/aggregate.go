package domain

import "github.com/google/uuid"

// VoteDetail is a vote with its voter expanded. Voter is nil on paths that
// do not expand voters.
type VoteDetail struct {
	Vote
	Voter *User
}

// ItemDetail is an item with its live vote set and derived consensus.
type ItemDetail struct {
	Item
	Votes     []VoteDetail
	Consensus Consensus
}

// TripDetail is the fully expanded trip aggregate.
type TripDetail struct {
	Trip
	Leader        User
	Collaborators []User
	Items         []ItemDetail
}

// NewItemDetail builds an ItemDetail from votes and an optional voter index.
// A nil users map leaves voters unexpanded.
func NewItemDetail(item Item, votes []Vote, users map[uuid.UUID]User, agreeStatus string) ItemDetail {
	details := make([]VoteDetail, len(votes))
	for i, v := range votes {
		details[i] = VoteDetail{Vote: v}
		if users != nil {
			if u, ok := users[v.UserID]; ok {
				details[i].Voter = &u
			}
		}
	}
	return ItemDetail{
		Item:      item,
		Votes:     details,
		Consensus: ComputeConsensus(votes, agreeStatus),
	}
}
