package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the kind of itinerary candidate.
type ItemType string

const (
	ItemTypeFlight     ItemType = "flight"
	ItemTypeLodging    ItemType = "lodging"
	ItemTypeRestaurant ItemType = "restaurant"
	ItemTypeActivity   ItemType = "activity"
	ItemTypeOther      ItemType = "other"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeFlight, ItemTypeLodging, ItemTypeRestaurant, ItemTypeActivity, ItemTypeOther:
		return true
	}
	return false
}

// FlightDetails are the attributes only a flight carries.
type FlightDetails struct {
	Airline          string     `json:"airline,omitempty"`
	FlightNumber     string     `json:"flightNumber,omitempty"`
	DepartureAirport string     `json:"departureAirport,omitempty"`
	ArrivalAirport   string     `json:"arrivalAirport,omitempty"`
	DepartAt         *time.Time `json:"departAt,omitempty"`
	ArriveAt         *time.Time `json:"arriveAt,omitempty"`
}

// LodgingDetails are the attributes only a lodging carries.
type LodgingDetails struct {
	Address  string     `json:"address,omitempty"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}

// ItemDetails is the type-specific payload stored alongside an item.
// At most one field is set, matching the item's type.
type ItemDetails struct {
	Flight  *FlightDetails  `json:"flight,omitempty"`
	Lodging *LodgingDetails `json:"lodging,omitempty"`
}

// Item is a candidate itinerary entry that collaborators vote on.
type Item struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Type      ItemType
	Name      string
	Confirmed bool
	Price     *string
	Location  *string
	Website   *string
	Details   ItemDetails
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemUpdateParams is a typed partial update. Nil fields are left unchanged.
// Flight and Lodging replace the stored details wholesale.
type ItemUpdateParams struct {
	Name      *string
	Confirmed *bool
	Price     *string
	Location  *string
	Website   *string
	Flight    *FlightDetails
	Lodging   *LodgingDetails
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Confirmed == nil && p.Price == nil && p.Location == nil &&
		p.Website == nil && p.Flight == nil && p.Lodging == nil
}

// CheckDetails returns a FieldError for every detail block that does not
// belong to itemType.
func CheckDetails(itemType ItemType, flight *FlightDetails, lodging *LodgingDetails) []FieldError {
	var errs []FieldError
	if flight != nil && itemType != ItemTypeFlight {
		errs = append(errs, FieldError{Field: "flight", Message: "not allowed for type " + itemType.String()})
	}
	if lodging != nil && itemType != ItemTypeLodging {
		errs = append(errs, FieldError{Field: "lodging", Message: "not allowed for type " + itemType.String()})
	}
	if flight != nil && flight.DepartAt != nil && flight.ArriveAt != nil && flight.ArriveAt.Before(*flight.DepartAt) {
		errs = append(errs, FieldError{Field: "flight.arriveAt", Message: "must not be before departAt"})
	}
	if lodging != nil && lodging.CheckIn != nil && lodging.CheckOut != nil && lodging.CheckOut.Before(*lodging.CheckIn) {
		errs = append(errs, FieldError{Field: "lodging.checkOut", Message: "must not be before checkIn"})
	}
	return errs
}
