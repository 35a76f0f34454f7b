package citydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownCity(t *testing.T) {
	dubai := Lookup("Dubai")

	assert.Equal(t, 4, dubai.TimezoneOffset)
	assert.Equal(t, "AED", dubai.Currency)
	assert.InDelta(t, 0.27, dubai.ExchangeRateToUSD, 1e-9)
	require.Len(t, dubai.Transport, 3)
	require.Len(t, dubai.Meals, 3)
	assert.Len(t, dubai.Hotels, 4)
	assert.True(t, dubai.Transport[1].IsAirportTransfer())
	assert.False(t, dubai.Transport[0].IsAirportTransfer())
}

func TestLookup_UnknownCityFallsBackToDefault(t *testing.T) {
	got := Lookup("Reykjavik")

	assert.Equal(t, defaultCity, got)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, 0, got.TimezoneOffset)
	assert.Equal(t, 35, got.AirportToHotelMinutes)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	first := Lookup("Tokyo")
	first.Hotels[0].PricePerNight = 1
	first.Transport = nil

	second := Lookup("Tokyo")
	assert.NotEqual(t, 1.0, second.Hotels[0].PricePerNight)
	assert.NotEmpty(t, second.Transport)
}

func TestCityTable_AllEntriesAreComplete(t *testing.T) {
	assert.Len(t, cities, 14)

	for name := range cities {
		c := Lookup(name)
		assert.NotEmpty(t, c.Transport, name)
		assert.Len(t, c.Meals, 3, name)
		assert.NotEmpty(t, c.Hotels, name)
		assert.Greater(t, c.ExchangeRateToUSD, 0.0, name)

		tiers := map[MealTier]bool{}
		for _, m := range c.Meals {
			tiers[m.Tier] = true
		}
		assert.Equal(t, map[MealTier]bool{MealBudget: true, MealMid: true, MealFine: true}, tiers, name)
	}
}
