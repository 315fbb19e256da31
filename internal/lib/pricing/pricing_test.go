package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekBooker/internal/models"
)

func price(f float64) *float64 { return &f }

func ridgeTrek() models.Event {
	return models.Event{
		ID:   "T1",
		Kind: models.KindTrek,
		Name: "Ridge Trek",
		CityPricing: []models.CityPricing{
			{City: "Pune", BasePrice: price(2000), DiscountPrice: 1500},
			{City: "Mumbai", BasePrice: price(2200)},
			{City: "Nashik"},
		},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		city      string
		members   int
		wantUnit  float64
		wantFinal float64
		wantCity  models.City
		wantErr   error
	}{
		{name: "discount wins", city: "Pune", members: 3, wantUnit: 1500, wantFinal: 4500, wantCity: "Pune"},
		{name: "case insensitive", city: "pUNE", members: 1, wantUnit: 1500, wantFinal: 1500, wantCity: "Pune"},
		{name: "base price without discount", city: "Mumbai", members: 2, wantUnit: 2200, wantFinal: 4400, wantCity: "Mumbai"},
		{name: "no price at all", city: "Nashik", members: 2, wantErr: ErrInvalidPrice},
		{name: "unknown city", city: "Delhi", members: 2, wantErr: ErrNoPricingForCity},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, err := Resolve(ridgeTrek(), tc.city, tc.members)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantCity, q.City)
			assert.Equal(t, tc.wantUnit, q.UnitPrice)
			assert.Equal(t, tc.wantFinal, q.FinalPrice)
			assert.Equal(t, tc.members, q.MembersCount)
		})
	}
}

func TestResolveListsAvailableCities(t *testing.T) {
	t.Parallel()

	_, err := Resolve(ridgeTrek(), "Delhi", 1)

	var noPricing *NoPricingError
	require.True(t, errors.As(err, &noPricing))
	assert.Equal(t, []models.City{"Pune", "Mumbai", "Nashik"}, noPricing.AvailableCities)
	assert.Contains(t, err.Error(), "Pune, Mumbai, Nashik")
}

func TestResolveIsProportionalToMembers(t *testing.T) {
	t.Parallel()

	for members := models.MinMembers; members <= models.MaxMembers; members++ {
		q, err := Resolve(ridgeTrek(), "Mumbai", members)
		require.NoError(t, err)
		assert.Equal(t, 2200*float64(members), q.FinalPrice)
	}
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(450000), ToMinorUnits(4500))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(101), ToMinorUnits(1.005+0.0000001))
}
