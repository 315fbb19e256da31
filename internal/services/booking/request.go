package booking

import (
	"regexp"
	"strings"
	"trekBooker/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	formats      = validator.New()
)

// Request is a reservation as submitted by a customer or entered by an admin.
type Request struct {
	Name         string
	Email        string
	PhoneNumber  string
	City         string
	MembersCount int
	TrekID       string
	TourID       string
}

// validate checks the request in a fixed order so the first problem reported is stable:
// missing fields, event reference, event id format, phone, member count, email format.
func (r Request) validate() (models.EventRef, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"name", strings.TrimSpace(r.Name) != ""},
		{"email", strings.TrimSpace(r.Email) != ""},
		{"phoneNumber", strings.TrimSpace(r.PhoneNumber) != ""},
		{"city", strings.TrimSpace(r.City) != ""},
		{"membersCount", r.MembersCount != 0},
	}
	for _, f := range required {
		if !f.present {
			return models.EventRef{}, &MissingFieldError{Field: f.name}
		}
	}

	ref, err := models.EventRefFromIDs(r.TrekID, r.TourID)
	if err != nil {
		return models.EventRef{}, err
	}

	if formats.Var(ref.ID(), "uuid") != nil {
		return models.EventRef{}, ErrInvalidEventID
	}

	if !phonePattern.MatchString(strings.TrimSpace(r.PhoneNumber)) {
		return models.EventRef{}, ErrInvalidPhone
	}

	if r.MembersCount < models.MinMembers || r.MembersCount > models.MaxMembers {
		return models.EventRef{}, ErrInvalidMemberCount
	}

	if formats.Var(strings.TrimSpace(r.Email), "email") != nil {
		return models.EventRef{}, ErrInvalidEmail
	}

	return ref, nil
}
