package trip

import (
	"math"
)

// Reprice recomputes a destination's subtotal under sel without modifying d.
// Out-of-range indices contribute nothing.
func Reprice(d DestinationCost, sel Selection) Repriced {
	var r Repriced

	flightIdx := 0
	if sel.FlightIndex != nil {
		flightIdx = *sel.FlightIndex
	}
	if flightIdx >= 0 && flightIdx < len(d.Flights) {
		r.Flight = d.Flights[flightIdx].Price
	}

	if sel.TransportIndices == nil {
		r.Transport = d.TransportTotal
	} else {
		seen := make(map[int]bool, len(sel.TransportIndices))
		sum := 0.0
		for _, i := range sel.TransportIndices {
			if i < 0 || i >= len(d.Transport) || seen[i] {
				continue
			}
			seen[i] = true
			sum += d.Transport[i].TotalCost
		}
		r.Transport = round2(sum)
	}

	tiers := sel.MealTiers
	if tiers == nil {
		tiers = d.Food.Tiers
	}
	avg := averageMealCost(d.Food.MealOptions, tiers)
	r.Food = round2(avg * float64(d.Food.MealsPerDay) * float64(d.Food.TotalDays))

	hotelIdx := d.SelectedHotelIndex
	if sel.HotelIndex != nil {
		hotelIdx = *sel.HotelIndex
	}
	if hotelIdx >= 0 && hotelIdx < len(d.Hotels) {
		r.Hotel = d.Hotels[hotelIdx].TotalCost
	}

	r.Subtotal = round2(r.Flight + r.Transport + r.Food + r.Hotel)
	return r
}

// LocalAmount converts the non-flight part of r into the destination's
// currency, rounded to whole units. It is zero for USD destinations.
func (r Repriced) LocalAmount(d DestinationCost) float64 {
	if d.LocalCurrency == CurrencyUSD || d.ExchangeRateToUSD <= 0 {
		return 0
	}
	return math.Round((r.Transport + r.Food + r.Hotel) / d.ExchangeRateToUSD)
}
