package trip

import (
	"fmt"
	"math"
	"time"

	"tripcost/internal/citydata"
	"tripcost/internal/flight"
)

const dateLayout = "2006-01-02"

// AggregateInput carries everything needed to price one leg.
type AggregateInput struct {
	Leg                Leg
	NextLegDate        string
	City               citydata.CityData
	MealsPerDay        int
	HotelStars         int
	MealTiers          []citydata.MealTier
	Flights            []flight.FlightOption
	HomeTimezoneOffset int
}

// Aggregate prices a stay leg: flight, ground transport, food and hotel.
// The leg must be complete.
func Aggregate(in AggregateInput) DestinationCost {
	arrivalDate := in.Leg.DepartureDate
	departureDate := in.NextLegDate
	if departureDate == "" {
		departureDate = arrivalDate
	}

	nights := NightsBetween(arrivalDate, departureDate)
	days := nights + 1

	transport := transportOptions(in.City.Transport, days)
	transportTotal := 0.0
	for _, t := range transport {
		transportTotal += t.TotalCost
	}
	transportTotal = round2(transportTotal)

	food := foodBreakdown(in.City.Meals, in.MealTiers, in.MealsPerDay, days)

	hotels := hotelOptions(in.City.Hotels, nights)
	hotelIdx := selectHotel(hotels, in.HotelStars)

	d := baseDestination(in)
	d.DepartureDate = departureDate
	d.TotalNights = nights
	d.TotalDays = days
	d.Transport = transport
	d.TransportTotal = transportTotal
	d.Food = food
	d.Hotels = hotels
	d.SelectedHotelIndex = hotelIdx
	if hotelIdx >= 0 {
		d.SelectedHotel = &hotels[hotelIdx]
	}
	d.Subtotal = round2(d.FlightCost() + transportTotal + food.TotalCost + d.HotelCost())
	return d
}

// AggregateReturn prices a return-home leg: flight only.
func AggregateReturn(in AggregateInput) DestinationCost {
	d := baseDestination(in)
	d.DepartureDate = in.Leg.DepartureDate
	d.Transport = []TransportOption{}
	d.Food = FoodBreakdown{MealOptions: []citydata.MealCost{}, Tiers: []citydata.MealTier{}, Currency: CurrencyUSD}
	d.Hotels = []HotelOption{}
	d.SelectedHotelIndex = -1
	d.IsReturn = true
	d.Subtotal = round2(d.FlightCost())
	return d
}

func baseDestination(in AggregateInput) DestinationCost {
	d := DestinationCost{
		ArrivalDate:           in.Leg.DepartureDate,
		Flights:               in.Flights,
		SelectedHotelIndex:    -1,
		Timezone:              in.City.Timezone,
		TimezoneOffset:        in.City.TimezoneOffset,
		HomeTimezoneOffset:    in.HomeTimezoneOffset,
		TimezoneDifference:    TimezoneLabel(in.City.TimezoneOffset - in.HomeTimezoneOffset),
		LocalCurrency:         in.City.Currency,
		LocalCurrencySymbol:   in.City.CurrencySymbol,
		ExchangeRateToUSD:     in.City.ExchangeRateToUSD,
		AirportToHotelMinutes: in.City.AirportToHotelMinutes,
	}
	if in.Leg.To != nil {
		d.Destination = *in.Leg.To
	}
	if d.Flights == nil {
		d.Flights = []flight.FlightOption{}
	}
	if len(d.Flights) > 0 {
		selected := d.Flights[0]
		d.SelectedFlight = &selected
	}
	return d
}

func transportOptions(templates []citydata.TransportTemplate, days int) []TransportOption {
	out := make([]TransportOption, 0, len(templates))
	for _, t := range templates {
		opt := TransportOption{TransportTemplate: t, Currency: CurrencyUSD}
		if t.IsAirportTransfer() {
			// One ride in, one ride out.
			opt.TotalDays = 1
			opt.TotalCost = round2(t.CostPerTrip * 2)
		} else {
			opt.TotalDays = days
			opt.TotalCost = round2(t.CostPerTrip * float64(t.TripsPerDay) * float64(days))
		}
		out = append(out, opt)
	}
	return out
}

func foodBreakdown(meals []citydata.MealCost, tiers []citydata.MealTier, mealsPerDay, days int) FoodBreakdown {
	applied := resolveTiers(meals, tiers)
	avg := averageMealCost(meals, applied)

	return FoodBreakdown{
		MealsPerDay:  mealsPerDay,
		TotalDays:    days,
		MealOptions:  append([]citydata.MealCost{}, meals...),
		Tiers:        applied,
		AvgDailyCost: round2(avg * float64(mealsPerDay)),
		TotalCost:    round2(avg * float64(mealsPerDay) * float64(days)),
		Currency:     CurrencyUSD,
	}
}

// resolveTiers expands a nil selection to every tier the city offers.
func resolveTiers(meals []citydata.MealCost, tiers []citydata.MealTier) []citydata.MealTier {
	if tiers != nil {
		return append([]citydata.MealTier{}, tiers...)
	}
	all := make([]citydata.MealTier, 0, len(meals))
	for _, m := range meals {
		all = append(all, m.Tier)
	}
	return all
}

// averageMealCost averages the meals whose tier is in tiers. No match gives 0.
func averageMealCost(meals []citydata.MealCost, tiers []citydata.MealTier) float64 {
	want := make(map[citydata.MealTier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}

	sum, n := 0.0, 0
	for _, m := range meals {
		if want[m.Tier] {
			sum += m.AvgCost
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func hotelOptions(templates []citydata.HotelTemplate, nights int) []HotelOption {
	out := make([]HotelOption, 0, len(templates))
	for _, h := range templates {
		out = append(out, HotelOption{
			HotelTemplate: h,
			TotalNights:   nights,
			TotalCost:     round2(h.PricePerNight * float64(nights)),
			Currency:      CurrencyUSD,
		})
	}
	return out
}

// selectHotel picks the first hotel rated min(stars, 5), falling back to the
// first hotel. It returns -1 for an empty list.
func selectHotel(hotels []HotelOption, stars int) int {
	if len(hotels) == 0 {
		return -1
	}
	want := min(stars, 5)
	for i, h := range hotels {
		if h.Stars == want {
			return i
		}
	}
	return 0
}

// NightsBetween counts whole nights between two YYYY-MM-DD dates, at least 1.
// Unparseable dates count as 1 night.
func NightsBetween(from, to string) int {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return 1
	}
	nights := int(math.Round(end.Sub(start).Hours() / 24))
	return max(1, nights)
}

// TimezoneLabel renders an hour offset relative to home.
func TimezoneLabel(diff int) string {
	if diff == 0 {
		return "Same timezone"
	}
	if diff > 0 {
		return fmt.Sprintf("+%dh from home", diff)
	}
	return fmt.Sprintf("%dh from home", diff)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
