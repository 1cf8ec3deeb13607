package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTrip   EntityType = "TRIP"
	EntityTypeItem   EntityType = "ITEM"
	EntityTypeVote   EntityType = "VOTE"
	EntityTypeMember EntityType = "MEMBER"
	EntityTypeUser   EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

// AuditAction describes what happened to an entity.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs a mutation event on a domain entity. ActorID is nil for
// anonymous requests.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
