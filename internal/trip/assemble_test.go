package trip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcost/internal/airport"
)

func TestComputeTripCost_SeoulDubaiMiami(t *testing.T) {
	s := ComputeTripCost(seoulDubaiMiami())

	require.Len(t, s.Destinations, 3)
	dubai, miami, home := s.Destinations[0], s.Destinations[1], s.Destinations[2]

	assert.Equal(t, "DXB", dubai.Destination.Code)
	assert.Equal(t, 7, dubai.TotalNights)
	assert.Equal(t, 8, dubai.TotalDays)
	assert.Equal(t, "2024-06-08", dubai.DepartureDate)
	require.NotNil(t, dubai.SelectedFlight)
	assert.Equal(t, "QA729", dubai.SelectedFlight.FlightNumber)
	assert.Equal(t, 354.0, dubai.TransportTotal)
	assert.Equal(t, 704.0, dubai.Food.TotalCost)
	assert.Equal(t, 88.0, dubai.Food.AvgDailyCost)
	require.NotNil(t, dubai.SelectedHotel)
	assert.Equal(t, 4, dubai.SelectedHotel.Stars)
	assert.Equal(t, 1050.0, dubai.SelectedHotel.TotalCost)
	assert.Equal(t, 843.0+354+704+1050, dubai.Subtotal)
	assert.Equal(t, "-5h from home", dubai.TimezoneDifference)
	assert.Equal(t, 9, dubai.HomeTimezoneOffset)

	assert.Equal(t, "KO743", miami.SelectedFlight.FlightNumber)
	assert.Equal(t, 584.0, miami.TransportTotal)
	assert.Equal(t, 960.0, miami.Food.TotalCost)
	assert.Equal(t, 1400.0, miami.HotelCost())
	assert.Equal(t, 4156.0, miami.Subtotal)
	assert.Equal(t, "-14h from home", miami.TimezoneDifference)

	assert.True(t, home.IsReturn)
	assert.Equal(t, "SI625", home.SelectedFlight.FlightNumber)
	assert.Equal(t, 1126.0, home.Subtotal)
	assert.Equal(t, 0, home.TotalNights)
	assert.Equal(t, 0, home.TotalDays)
	assert.Equal(t, home.ArrivalDate, home.DepartureDate)
	assert.Empty(t, home.Transport)
	assert.Empty(t, home.Hotels)
	assert.Nil(t, home.SelectedHotel)
	assert.Equal(t, "Same timezone", home.TimezoneDifference)

	assert.Equal(t, 3181.0, s.TotalFlightCost)
	assert.Equal(t, 938.0, s.TotalTransportCost)
	assert.Equal(t, 1664.0, s.TotalFoodCost)
	assert.Equal(t, 2450.0, s.TotalHotelCost)
	assert.Equal(t, 8233.0, s.GrandTotal)
	assert.Equal(t, "USD", s.Currency)

	require.Len(t, s.LocalCurrencyTotals, 1)
	assert.Equal(t, LocalCurrencyTotal{Currency: "AED", Amount: 7807, Destination: "Dubai"}, s.LocalCurrencyTotals[0])
}

func TestComputeTripCost_TotalConsistency(t *testing.T) {
	plans := []Plan{
		seoulDubaiMiami(),
		{
			Legs: []Leg{
				{From: ap("SIN"), To: ap("BKK"), DepartureDate: "2024-03-01"},
				{From: ap("BKK"), To: ap("HKG"), DepartureDate: "2024-03-04"},
				{From: ap("HKG"), To: ap("NRT"), DepartureDate: "2024-03-06"},
				{From: ap("NRT"), To: ap("SIN"), DepartureDate: "2024-03-09", IsReturn: true},
			},
			MealsPerDay: 3,
			HotelStars:  5,
		},
	}

	for _, p := range plans {
		s := ComputeTripCost(p)
		want := math.Round((s.TotalFlightCost+s.TotalTransportCost+s.TotalFoodCost+s.TotalHotelCost)*100) / 100
		assert.Equal(t, want, s.GrandTotal)
	}
}

func TestComputeTripCost_Deterministic(t *testing.T) {
	assert.Equal(t, ComputeTripCost(seoulDubaiMiami()), ComputeTripCost(seoulDubaiMiami()))
}

func TestComputeTripCost_SkipsPlaceholderLegs(t *testing.T) {
	plan := seoulDubaiMiami()
	plan.Legs = append(plan.Legs[:2:2], Leg{ID: "draft", From: ap("MIA")}, plan.Legs[2])

	s := ComputeTripCost(plan)

	require.Len(t, s.Destinations, 3)
	// The draft leg has no date, so Miami becomes a same-day stop.
	assert.Equal(t, 1, s.Destinations[1].TotalNights)
}

func TestComputeTripCost_UnknownCityFallback(t *testing.T) {
	atlantis := &airport.Airport{Code: "ATL", City: "Atlantis", Country: "Nowhere"}
	plan := Plan{
		Legs: []Leg{
			{From: ap("ICN"), To: atlantis, DepartureDate: "2024-06-01"},
			{From: atlantis, To: ap("ICN"), DepartureDate: "2024-06-04", IsReturn: true},
		},
		MealsPerDay: 1,
		HotelStars:  3,
	}

	s := ComputeTripCost(plan)

	require.Len(t, s.Destinations, 2)
	d := s.Destinations[0]
	// 12*4*4 + 30*2 + 2*4*4
	assert.Equal(t, 284.0, d.TransportTotal)
	assert.Equal(t, "UTC", d.Timezone)
	assert.Equal(t, "-9h from home", d.TimezoneDifference)
	assert.Greater(t, d.Subtotal, 0.0)
	assert.False(t, math.IsInf(d.Subtotal, 0) || math.IsNaN(d.Subtotal))
	assert.Empty(t, s.LocalCurrencyTotals)
}

func TestComputeTripCost_EmptyPlan(t *testing.T) {
	s := ComputeTripCost(Plan{MealsPerDay: 2, HotelStars: 4})

	assert.Empty(t, s.Destinations)
	assert.Equal(t, 0.0, s.GrandTotal)
	assert.NotNil(t, s.LocalCurrencyTotals)
}

func TestHomeTimezoneOffset(t *testing.T) {
	assert.Equal(t, 9, HomeTimezoneOffset(Plan{}))
	assert.Equal(t, 9, HomeTimezoneOffset(Plan{Legs: []Leg{{To: ap("DXB")}}}))
	assert.Equal(t, 1, HomeTimezoneOffset(Plan{Legs: []Leg{{From: ap("CDG")}}}))
}
