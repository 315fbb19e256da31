package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type EventKind string

const (
	KindTrek EventKind = "trek"
	KindTour EventKind = "tour"
)

var ErrUnknownEventKind = errors.New("unknown event kind")

// ParseEventKind accepts the singular and plural forms used in routes ("trek", "treks").
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trek", "treks":
		return KindTrek, nil
	case "tour", "tours":
		return KindTour, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventKind, s)
	}
}

var ErrAmbiguousEventRef = errors.New("exactly one of trekId or tourId must be provided")

// EventRef points at exactly one trek or one tour.
type EventRef struct {
	kind EventKind
	id   string
}

func TrekRef(id string) EventRef {
	return EventRef{kind: KindTrek, id: id}
}

func TourRef(id string) EventRef {
	return EventRef{kind: KindTour, id: id}
}

func NewEventRef(kind EventKind, id string) (EventRef, error) {
	switch kind {
	case KindTrek, KindTour:
		return EventRef{kind: kind, id: id}, nil
	default:
		return EventRef{}, ErrUnknownEventKind
	}
}

// EventRefFromIDs builds a reference from the two optional ids of a reservation request.
func EventRefFromIDs(trekID, tourID string) (EventRef, error) {
	trekID, tourID = strings.TrimSpace(trekID), strings.TrimSpace(tourID)

	switch {
	case trekID != "" && tourID == "":
		return TrekRef(trekID), nil
	case tourID != "" && trekID == "":
		return TourRef(tourID), nil
	default:
		return EventRef{}, ErrAmbiguousEventRef
	}
}

func (r EventRef) Kind() EventKind { return r.kind }
func (r EventRef) ID() string      { return r.id }
func (r EventRef) IsZero() bool    { return r.kind == "" }

func (r EventRef) String() string {
	return string(r.kind) + ":" + r.id
}

// Columns returns the (trek_id, tour_id) pair used by the bookings table.
func (r EventRef) Columns() (trekID, tourID *string) {
	id := r.id
	if r.kind == KindTrek {
		return &id, nil
	}
	return nil, &id
}

type City string

// Cities is the fixed set of departure cities an event can be priced for.
var Cities = []City{
	"Mumbai",
	"Pune",
	"Bangalore",
	"Delhi",
	"Hyderabad",
	"Chennai",
	"Kolkata",
	"Ahmedabad",
	"Nashik",
	"Nagpur",
}

// ParseCity returns the canonical spelling of a known city.
func ParseCity(s string) (City, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Cities {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type CityPricing struct {
	City          City     `json:"city"`
	BasePrice     *float64 `json:"basePrice"`
	DiscountPrice float64  `json:"discountPrice"`
}

// UnitPrice is the discount price when one is set, the base price otherwise.
func (p CityPricing) UnitPrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	if p.BasePrice == nil {
		return 0
	}
	return *p.BasePrice
}

type Event struct {
	ID          string        `json:"id"`
	Kind        EventKind     `json:"type"`
	Name        string        `json:"name"`
	IsActive    bool          `json:"isActive"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	CityPricing []CityPricing `json:"cityPricing"`
}

func (e Event) Ref() EventRef {
	return EventRef{kind: e.Kind, id: e.ID}
}

func (e Event) AvailableCities() []City {
	cities := make([]City, 0, len(e.CityPricing))
	for _, p := range e.CityPricing {
		cities = append(cities, p.City)
	}
	return cities
}

func (e Event) HasEnded(now time.Time) bool {
	return e.EndDate.Before(now)
}

var ErrDuplicateCity = errors.New("duplicate city in pricing")

// ValidatePricing checks the pricing list of an event before it is stored.
func ValidatePricing(pricing []CityPricing) error {
	seen := make(map[City]struct{}, len(pricing))
	for _, p := range pricing {
		city, ok := ParseCity(string(p.City))
		if !ok {
			return fmt.Errorf("unknown city %q", p.City)
		}
		if _, dup := seen[city]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCity, city)
		}
		seen[city] = struct{}{}
		if p.DiscountPrice < 0 || (p.BasePrice != nil && *p.BasePrice < 0) {
			return fmt.Errorf("negative price for %s", city)
		}
	}
	return nil
}
