package itinerary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// CreateItemInput holds the parameters for adding an item to a trip.
type CreateItemInput struct {
	TripID    uuid.UUID
	Type      domain.ItemType
	Name      string
	Confirmed bool
	Price     *string
	Location  *string
	Website   *string
	Flight    *domain.FlightDetails
	Lodging   *domain.LodgingDetails
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.TripID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "trip_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid item type"})
	} else {
		errs = append(errs, domain.CheckDetails(i.Type, i.Flight, i.Lodging)...)
	}

	errs = append(errs, checkOptional(i.Price, i.Location, i.Website)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput is a typed partial update. Nil fields are left unchanged.
// An empty string clears price, location or website.
type UpdateItemInput struct {
	ItemID    uuid.UUID
	Name      *string
	Confirmed *bool
	Price     *string
	Location  *string
	Website   *string
	Flight    *domain.FlightDetails
	Lodging   *domain.LodgingDetails
}

func (i UpdateItemInput) params() domain.ItemUpdateParams {
	p := domain.ItemUpdateParams{
		Confirmed: i.Confirmed,
		Price:     trimPatch(i.Price),
		Location:  trimPatch(i.Location),
		Website:   trimPatch(i.Website),
		Flight:    i.Flight,
		Lodging:   i.Lodging,
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	return p
}

// trimPatch trims a patched text field. Unlike trimOrNil it keeps a blank
// value, which clears the column.
func trimPatch(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// Validate checks the fields that can be checked without loading the item.
// Type-specific detail blocks are checked against the stored type by the
// service.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	if i.params().IsEmpty() {
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

	errs = append(errs, checkOptional(i.Price, i.Location, i.Website)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkOptional(price, location, website *string) []domain.FieldError {
	var errs []domain.FieldError
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"price", price},
		{"location", location},
		{"website", website},
	} {
		if f.value != nil && len(strings.TrimSpace(*f.value)) > MaxFieldLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 500 characters"})
		}
	}
	return errs
}
