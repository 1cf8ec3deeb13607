package trip

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// CreateTripInput holds the parameters for creating a trip.
type CreateTripInput struct {
	Name            string
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	LeaderID        uuid.UUID
	CollaboratorIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTripInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.LeaderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "leader_id", Message: "required"})
	}

	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTripInput is a typed partial update of a trip. BodyID is the id sent
// in the request body, if any; it must equal ID. CollaboratorIDs, when set,
// is the full replacement collaborator set (the leader is always kept).
// ClearStartDate and ClearEndDate remove a stored date.
type UpdateTripInput struct {
	ID              uuid.UUID
	BodyID          *uuid.UUID
	Name            *string
	StartDate       *time.Time
	EndDate         *time.Time
	ClearStartDate  bool
	ClearEndDate    bool
	Location        *string
	CollaboratorIDs *[]uuid.UUID
}

func (i UpdateTripInput) params() domain.TripUpdateParams {
	p := domain.TripUpdateParams{
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		ClearStartDate: i.ClearStartDate,
		ClearEndDate:   i.ClearEndDate,
	}
	if i.ClearStartDate {
		p.StartDate = nil
	}
	if i.ClearEndDate {
		p.EndDate = nil
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Location != nil {
		loc := strings.TrimSpace(*i.Location)
		p.Location = &loc
	}
	return p
}

// Validate checks all fields and collects all errors.
func (i UpdateTripInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.BodyID != nil && *i.BodyID != i.ID {
		errs = append(errs, domain.FieldError{Field: "id", Message: "id mismatch"})
	}

	if i.params().IsEmpty() && i.CollaboratorIDs == nil {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "at least one field is required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
		if len(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}

	if p := i.params(); p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
