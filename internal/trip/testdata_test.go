package trip

import (
	"tripcost/internal/airport"
)

func ap(code string) *airport.Airport {
	a, ok := airport.ByCode(code)
	if !ok {
		panic("unknown airport " + code)
	}
	return &a
}

// seoulDubaiMiami is home=Seoul, Dubai for a week, Miami for a week, then home.
func seoulDubaiMiami() Plan {
	return Plan{
		Legs: []Leg{
			{ID: "leg-1", From: ap("ICN"), To: ap("DXB"), DepartureDate: "2024-06-01"},
			{ID: "leg-2", From: ap("DXB"), To: ap("MIA"), DepartureDate: "2024-06-08"},
			{ID: "leg-3", From: ap("MIA"), To: ap("ICN"), DepartureDate: "2024-06-15", IsReturn: true},
		},
		MealsPerDay: 2,
		HotelStars:  4,
	}
}
