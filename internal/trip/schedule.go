package trip

import (
	"fmt"
	"time"

	"tripcost/internal/flight"
)

// Anchor used for the arrival day when a destination has no flight.
const (
	defaultArrivalHour   = 19
	defaultArrivalMinute = 0
	defaultTransitMins   = 35
)

type clockActivity struct {
	hour, minute int
	activity     string
	icon         string
}

var departureMorning = []clockActivity{
	{7, 0, "Wake up, pack", "⏰"},
	{8, 0, "Breakfast", "🍽️"},
	{9, 0, "Hotel checkout", "🏨"},
	{9, 30, "Uber/taxi to airport", "🚗"},
	{10, 30, "Arrive at airport, check-in", "✈️"},
}

var businessDay = []clockActivity{
	{7, 0, "Wake up", "⏰"},
	{7, 30, "Breakfast at hotel / nearby", "🍽️"},
	{9, 0, "Business meetings / work", "💼"},
	{12, 30, "Lunch with colleagues/clients", "🍽️"},
	{14, 0, "Afternoon meetings / work", "💼"},
	{18, 0, "Wrap up, head to hotel", "🚗"},
	{19, 30, "Dinner (restaurant)", "🍽️"},
	{21, 0, "Free time / rest", "😌"},
	{23, 0, "Sleep", "😴"},
}

// BuildSchedule expands a priced trip into day entries with local and home
// clock times. Days strictly inside a stay are summarized as one block.
func BuildSchedule(summary Summary) []DaySchedule {
	days := make([]DaySchedule, 0, len(summary.Destinations)*3)
	dayNum := 1

	for i, dest := range summary.Destinations {
		var prev, next *DestinationCost
		if i > 0 {
			prev = &summary.Destinations[i-1]
		}
		if i+1 < len(summary.Destinations) {
			next = &summary.Destinations[i+1]
		}

		if dest.IsReturn {
			days = append(days, returnDay(dest, prev, dayNum))
			dayNum++
			continue
		}

		days = append(days, arrivalDay(dest, dayNum))
		dayNum++

		if dest.DepartureDate == dest.ArrivalDate {
			continue
		}

		if span := dest.TotalDays - 2; span > 0 {
			label := fmt.Sprintf("Days %d–%d (Business days)", dayNum, dayNum+span-1)
			if span == 1 {
				label = fmt.Sprintf("Day %d (Business day)", dayNum)
			}
			days = append(days, DaySchedule{
				DayNumber:   dayNum,
				SpanDays:    span,
				Label:       label,
				Date:        addDays(dest.ArrivalDate, 1),
				Destination: dest.Destination.City,
				Items:       clockItems(businessDay, offsetDiff(dest)),
			})
			dayNum += span
		}

		days = append(days, departureDay(dest, next, dayNum))
		dayNum++
	}

	return days
}

func arrivalDay(dest DestinationCost, dayNum int) DaySchedule {
	diff := offsetDiff(dest)
	h, m := defaultArrivalHour, defaultArrivalMinute
	if len(dest.Flights) > 0 {
		if fh, fm, ok := flight.ParseClock(dest.Flights[0].ArrivalTime); ok {
			h, m = fh, fm
		}
	}
	transit := dest.AirportToHotelMinutes
	if transit <= 0 {
		transit = defaultTransitMins
	}

	// Steps after landing never run earlier than the one before, so a late
	// arrival pushes them past midnight instead of out of order.
	steps := []arrivalStep{
		{h*60 + m, fmt.Sprintf("Arrive at %s", dest.Destination.Label()), "✈️"},
		{(h+1)*60 + m, "Immigration & baggage claim", "🛂"},
		{(h+1)*60 + 30, fmt.Sprintf("Uber/taxi to hotel (~%d min)", transit), "🚗"},
		{(h+2)*60 + 30, "Check in to hotel, settle in", "🏨"},
	}
	if h < 20 {
		steps = append(steps, arrivalStep{min(h+3, 22) * 60, "Dinner (local cuisine)", "🍽️"})
	}
	steps = append(steps, arrivalStep{23 * 60, "Rest & adjust to timezone", "😴"})

	items := make([]ScheduleItem, 0, len(steps))
	at := 0
	for i, st := range steps {
		at = max(at, st.minutes)
		if i == len(steps)-1 && at > st.minutes {
			at += 30
		}
		items = append(items, item(at/60, at%60, diff, st.activity, st.icon))
	}

	return DaySchedule{
		DayNumber:   dayNum,
		SpanDays:    1,
		Label:       fmt.Sprintf("Day %d (Arrival)", dayNum),
		Date:        dest.ArrivalDate,
		Destination: dest.Destination.City,
		Items:       items,
	}
}

// departureDay ends with the flight of the following leg, when there is one.
func departureDay(dest DestinationCost, next *DestinationCost, dayNum int) DaySchedule {
	diff := offsetDiff(dest)
	items := clockItems(departureMorning, diff)

	if next != nil && next.SelectedFlight != nil {
		if h, m, ok := flight.ParseClock(next.SelectedFlight.DepartureTime); ok {
			items = append(items, item(h, m, diff,
				fmt.Sprintf("Depart %s → %s", dest.Destination.City, next.SelectedFlight.Airline), "🛫"))
		}
	}

	return DaySchedule{
		DayNumber:   dayNum,
		SpanDays:    1,
		Label:       fmt.Sprintf("Day %d (Departure)", dayNum),
		Date:        dest.DepartureDate,
		Destination: dest.Destination.City,
		Items:       items,
	}
}

// returnDay shows the flight home: departure in the previous city's local
// time and arrival in the home city's.
func returnDay(dest DestinationCost, prev *DestinationCost, dayNum int) DaySchedule {
	items := []ScheduleItem{}
	if f := dest.SelectedFlight; f != nil {
		depDiff := 0
		depCity := "origin"
		if prev != nil {
			depDiff = offsetDiff(*prev)
			depCity = prev.Destination.City
		}
		if h, m, ok := flight.ParseClock(f.DepartureTime); ok {
			items = append(items, item(h, m, depDiff, fmt.Sprintf("Depart %s → %s", depCity, f.Airline), "🛫"))
		}
		if h, m, ok := flight.ParseClock(f.ArrivalTime); ok {
			arr := item(h, m, offsetDiff(dest), fmt.Sprintf("Arrive home at %s", dest.Destination.Label()), "🏠")
			if len(f.ArrivalTime) > 5 {
				arr.LocalTime += f.ArrivalTime[5:]
			}
			items = append(items, arr)
		}
	}

	return DaySchedule{
		DayNumber:   dayNum,
		SpanDays:    1,
		Label:       fmt.Sprintf("Day %d (Return home)", dayNum),
		Date:        dest.ArrivalDate,
		Destination: dest.Destination.City,
		Items:       items,
	}
}

func clockItems(template []clockActivity, diff int) []ScheduleItem {
	items := make([]ScheduleItem, 0, len(template))
	for _, a := range template {
		items = append(items, item(a.hour, a.minute, diff, a.activity, a.icon))
	}
	return items
}

type arrivalStep struct {
	minutes  int
	activity string
	icon     string
}

// item renders a clock time on the day's local calendar. Hours past 23 are
// shown on the next day in both clocks.
func item(hour, minute, diff int, activity, icon string) ScheduleItem {
	local := fmt.Sprintf("%02d:%02d", hour%24, minute)
	if hour >= 24 {
		local += " +1d"
	}
	return ScheduleItem{
		LocalTime: local,
		HomeTime:  HomeClock(hour, minute, diff),
		Activity:  activity,
		Icon:      icon,
	}
}

func offsetDiff(d DestinationCost) int {
	return d.TimezoneOffset - d.HomeTimezoneOffset
}

// HomeClock converts a local clock time to home time given the destination's
// offset from home, marking a shift across midnight.
func HomeClock(localHour, localMinute, diff int) string {
	h := localHour - diff
	shift := ""
	switch {
	case h < 0:
		h += 24
		shift = " (prev day)"
	case h >= 24:
		h -= 24
		shift = " (next day)"
	}
	return fmt.Sprintf("%02d:%02d%s", h, localMinute, shift)
}

func addDays(date string, n int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}
