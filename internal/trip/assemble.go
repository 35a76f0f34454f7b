package trip

import (
	"math"

	"tripcost/internal/citydata"
	"tripcost/internal/flight"
)

// ComputeTripCost prices every complete leg of plan and totals the trip.
// Placeholder legs are skipped. It never fails.
func ComputeTripCost(plan Plan) Summary {
	home := HomeTimezoneOffset(plan)

	summary := Summary{
		Destinations:        make([]DestinationCost, 0, len(plan.Legs)),
		Currency:            CurrencyUSD,
		LocalCurrencyTotals: []LocalCurrencyTotal{},
	}

	var flights, transport, food, hotels float64
	for i, leg := range plan.Legs {
		if !leg.Complete() {
			continue
		}

		nextDate := ""
		if i+1 < len(plan.Legs) {
			nextDate = plan.Legs[i+1].DepartureDate
		}

		city := citydata.Lookup(leg.To.City)
		in := AggregateInput{
			Leg:                leg,
			NextLegDate:        nextDate,
			City:               city,
			MealsPerDay:        plan.MealsPerDay,
			HotelStars:         plan.HotelStars,
			MealTiers:          plan.MealTiers,
			Flights:            flight.Generate(leg.From.Code, leg.To.Code, leg.DepartureDate, plan.Priorities),
			HomeTimezoneOffset: home,
		}

		if leg.IsReturn {
			d := AggregateReturn(in)
			d.LegID = leg.ID
			flights += d.FlightCost()
			summary.Destinations = append(summary.Destinations, d)
			continue
		}

		d := Aggregate(in)
		d.LegID = leg.ID
		flights += d.FlightCost()
		transport += d.TransportTotal
		food += d.Food.TotalCost
		hotels += d.HotelCost()

		if city.Currency != CurrencyUSD && city.ExchangeRateToUSD > 0 {
			summary.LocalCurrencyTotals = append(summary.LocalCurrencyTotals, LocalCurrencyTotal{
				Currency:    city.Currency,
				Amount:      math.Round((d.TransportTotal + d.Food.TotalCost + d.HotelCost()) / city.ExchangeRateToUSD),
				Destination: leg.To.City,
			})
		}
		summary.Destinations = append(summary.Destinations, d)
	}

	summary.TotalFlightCost = round2(flights)
	summary.TotalTransportCost = round2(transport)
	summary.TotalFoodCost = round2(food)
	summary.TotalHotelCost = round2(hotels)
	summary.GrandTotal = round2(summary.TotalFlightCost + summary.TotalTransportCost + summary.TotalFoodCost + summary.TotalHotelCost)
	return summary
}

// HomeTimezoneOffset is the UTC offset of the first leg's origin city.
func HomeTimezoneOffset(plan Plan) int {
	if len(plan.Legs) == 0 || plan.Legs[0].From == nil {
		return defaultHomeTimezoneOffset
	}
	return citydata.Lookup(plan.Legs[0].From.City).TimezoneOffset
}
