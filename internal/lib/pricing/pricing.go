// Package pricing resolves the per-member price of an event for a departure city.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"trekBooker/internal/models"
)

var (
	ErrNoPricingForCity = errors.New("no pricing available for city")
	ErrInvalidPrice     = errors.New("invalid price calculation")
)

// NoPricingError lists the cities the event can be booked from so the caller can re-prompt.
type NoPricingError struct {
	City            string
	AvailableCities []models.City
}

func (e *NoPricingError) Error() string {
	names := make([]string, 0, len(e.AvailableCities))
	for _, c := range e.AvailableCities {
		names = append(names, string(c))
	}

	return fmt.Sprintf("%s %q, available cities: %s", ErrNoPricingForCity, e.City, strings.Join(names, ", "))
}

func (e *NoPricingError) Unwrap() error {
	return ErrNoPricingForCity
}

type Quote struct {
	City         models.City
	UnitPrice    float64
	MembersCount int
	FinalPrice   float64
}

// Resolve finds the city's pricing entry (case-insensitive) and multiplies the effective
// unit price by the member count.
func Resolve(event models.Event, city string, membersCount int) (Quote, error) {
	city = strings.TrimSpace(city)

	for _, p := range event.CityPricing {
		if !strings.EqualFold(string(p.City), city) {
			continue
		}

		unit := p.UnitPrice()
		if unit <= 0 {
			return Quote{}, fmt.Errorf("%w: unit price %.2f for %s", ErrInvalidPrice, unit, p.City)
		}

		return Quote{
			City:         p.City,
			UnitPrice:    unit,
			MembersCount: membersCount,
			FinalPrice:   roundCents(unit * float64(membersCount)),
		}, nil
	}

	return Quote{}, &NoPricingError{
		City:            city,
		AvailableCities: event.AvailableCities(),
	}
}

// ToMinorUnits converts an amount to the gateway's smallest currency unit (paise, cents).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
