package flight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const currencyUSD = "USD"

// Generate returns the synthesized offers for a route and date ranked
// best-first by priorities. The candidate set depends only on origin,
// destination and date.
func Generate(origin, destination, date string, priorities []Priority) []FlightOption {
	return Rank(Candidates(origin, destination, date), priorities)
}

// Candidates returns the unranked offers in generation order.
func Candidates(origin, destination, date string) []FlightOption {
	r := newRNG(hashString(fmt.Sprintf("%s-%s-%s", origin, destination, date)))

	price := float64(basePrice(origin, destination))
	duration := baseDuration(origin, destination)
	count := 3 + r.intn(3)

	options := make([]FlightOption, 0, count)
	for i := 0; i < count; i++ {
		options = append(options, nextOption(r, price, duration))
	}
	return options
}

func nextOption(r *rng, basePrice float64, baseDuration int) FlightOption {
	al := airlines[r.intn(len(airlines))]
	stops := r.intn(3)
	totalDuration := baseDuration + stops*(90+r.intn(120))

	multiplier := 0.8 + r.next()*0.6
	switch stops {
	case 0:
		multiplier += 0.3
	case 1:
		multiplier += 0.1
	default:
		multiplier -= 0.1
	}
	price := math.Round(basePrice * multiplier)

	depHour := 6 + r.intn(16)
	depMin := r.intn(4) * 15

	stopCities := make([]string, 0, stops)
	for j := 0; j < stops; j++ {
		stopCities = append(stopCities, transitCities[r.intn(len(transitCities))])
	}

	earlierSaving := math.Round(price * (0.05 + r.next()*0.15))
	laterIncrease := math.Round(price * (0.03 + r.next()*0.1))

	message := fmt.Sprintf("Prices may increase by $%.0f if delayed", laterIncrease)
	if earlierSaving > laterIncrease {
		message = fmt.Sprintf("Book 1 day earlier to save $%.0f", earlierSaving)
	}

	return FlightOption{
		Airline:          al.name,
		AirlineLogo:      al.logo,
		FlightNumber:     fmt.Sprintf("%s%d", strings.ToUpper(al.name[:2]), 100+r.intn(900)),
		DepartureTime:    fmt.Sprintf("%02d:%02d", depHour, depMin),
		ArrivalTime:      arrivalClock(depHour, depMin, totalDuration),
		Duration:         FormatDuration(totalDuration),
		DurationMinutes:  totalDuration,
		Stops:            stops,
		StopCities:       stopCities,
		Price:            price,
		Currency:         currencyUSD,
		CredibilityScore: al.credibility,
		PriceTrend: PriceTrend{
			EarlierPrice: price - earlierSaving,
			LaterPrice:   price + laterIncrease,
			Message:      message,
		},
	}
}

// arrivalClock formats the local arrival as HH:MM, suffixed " +1d" when it
// falls on a later day.
func arrivalClock(depHour, depMin, durationMin int) string {
	total := depHour*60 + depMin + durationMin
	clock := fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
	if total >= 24*60 {
		return clock + " +1d"
	}
	return clock
}

// FormatDuration renders minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ParseClock parses the leading "HH:MM" of a departure or arrival time and
// reports whether it succeeded.
func ParseClock(s string) (hour, minute int, ok bool) {
	if len(s) < 5 || s[2] != ':' {
		return 0, 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(s[3:5])
	if err != nil {
		return 0, 0, false
	}
	hour, minute = h, m
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
