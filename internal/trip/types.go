package trip

import (
	"tripcost/internal/airport"
	"tripcost/internal/citydata"
	"tripcost/internal/flight"
)

const (
	CurrencyUSD = "USD"

	// defaultHomeTimezoneOffset applies when the first leg has no origin.
	defaultHomeTimezoneOffset = 9
)

// Leg is one directed travel segment. A leg missing either airport is a
// placeholder and is skipped during pricing.
type Leg struct {
	ID            string           `json:"id"`
	From          *airport.Airport `json:"from"`
	To            *airport.Airport `json:"to"`
	DepartureDate string           `json:"departure_date" validate:"omitempty,datetime=2006-01-02"`
	IsReturn      bool             `json:"is_return"`
}

// Complete reports whether the leg has both airports set.
func (l Leg) Complete() bool {
	return l.From != nil && l.To != nil
}

// Plan is an ordered itinerary plus pricing preferences. A nil MealTiers
// averages every tier; an empty non-nil slice prices food at zero.
type Plan struct {
	Legs        []Leg               `json:"legs" validate:"required,min=1,dive"`
	MealsPerDay int                 `json:"meals_per_day" validate:"oneof=1 2 3"`
	HotelStars  int                 `json:"hotel_stars" validate:"oneof=3 4 5"`
	Priorities  []flight.Priority   `json:"flight_priorities,omitempty" validate:"omitempty,dive,oneof=duration rating stops price"`
	MealTiers   []citydata.MealTier `json:"meal_tiers,omitempty" validate:"omitempty,dive,oneof=budget mid fine"`
}

type TransportOption struct {
	citydata.TransportTemplate
	TotalDays int     `json:"total_days"`
	TotalCost float64 `json:"total_cost"`
	Currency  string  `json:"currency"`
}

type FoodBreakdown struct {
	MealsPerDay  int                 `json:"meals_per_day"`
	TotalDays    int                 `json:"total_days"`
	MealOptions  []citydata.MealCost `json:"meal_options"`
	Tiers        []citydata.MealTier `json:"tiers"`
	AvgDailyCost float64             `json:"avg_daily_cost"`
	TotalCost    float64             `json:"total_cost"`
	Currency     string              `json:"currency"`
}

type HotelOption struct {
	citydata.HotelTemplate
	TotalNights int     `json:"total_nights"`
	TotalCost   float64 `json:"total_cost"`
	Currency    string  `json:"currency"`
}

// DestinationCost is the priced result for one leg. SelectedHotelIndex is -1
// when no hotel applies.
type DestinationCost struct {
	LegID                 string                `json:"leg_id,omitempty"`
	Destination           airport.Airport       `json:"destination"`
	ArrivalDate           string                `json:"arrival_date"`
	DepartureDate         string                `json:"departure_date"`
	TotalNights           int                   `json:"total_nights"`
	TotalDays             int                   `json:"total_days"`
	Flights               []flight.FlightOption `json:"flights"`
	SelectedFlight        *flight.FlightOption  `json:"selected_flight"`
	Transport             []TransportOption     `json:"transport"`
	Food                  FoodBreakdown         `json:"food"`
	Hotels                []HotelOption         `json:"hotels"`
	SelectedHotel         *HotelOption          `json:"selected_hotel"`
	SelectedHotelIndex    int                   `json:"selected_hotel_index"`
	TransportTotal        float64               `json:"transport_total"`
	Subtotal              float64               `json:"subtotal"`
	Timezone              string                `json:"timezone"`
	TimezoneOffset        int                   `json:"timezone_offset"`
	HomeTimezoneOffset    int                   `json:"home_timezone_offset"`
	TimezoneDifference    string                `json:"timezone_difference"`
	LocalCurrency         string                `json:"local_currency"`
	LocalCurrencySymbol   string                `json:"local_currency_symbol"`
	ExchangeRateToUSD     float64               `json:"exchange_rate_to_usd"`
	AirportToHotelMinutes int                   `json:"airport_to_hotel_minutes"`
	IsReturn              bool                  `json:"is_return"`
}

// FlightCost is the price of the selected flight, or zero.
func (d DestinationCost) FlightCost() float64 {
	if d.SelectedFlight == nil {
		return 0
	}
	return d.SelectedFlight.Price
}

// HotelCost is the total of the selected hotel, or zero.
func (d DestinationCost) HotelCost() float64 {
	if d.SelectedHotel == nil {
		return 0
	}
	return d.SelectedHotel.TotalCost
}

type LocalCurrencyTotal struct {
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	Destination string  `json:"destination"`
}

// Summary is the whole-trip aggregate. It can always be regenerated from the
// plan that produced it.
type Summary struct {
	Destinations        []DestinationCost    `json:"destinations"`
	TotalFlightCost     float64              `json:"total_flight_cost"`
	TotalTransportCost  float64              `json:"total_transport_cost"`
	TotalFoodCost       float64              `json:"total_food_cost"`
	TotalHotelCost      float64              `json:"total_hotel_cost"`
	GrandTotal          float64              `json:"grand_total"`
	Currency            string               `json:"currency"`
	LocalCurrencyTotals []LocalCurrencyTotal `json:"local_currency_totals"`
}

// Selection overrides the default choices of a priced destination. Nil
// fields keep the default, empty non-nil slices select nothing.
type Selection struct {
	FlightIndex      *int                `json:"flight_index,omitempty"`
	HotelIndex       *int                `json:"hotel_index,omitempty"`
	MealTiers        []citydata.MealTier `json:"meal_tiers"`
	TransportIndices []int               `json:"transport_indices"`
}

type Repriced struct {
	Flight    float64 `json:"flight"`
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Hotel     float64 `json:"hotel"`
	Subtotal  float64 `json:"subtotal"`
}

type ScheduleItem struct {
	LocalTime string `json:"local_time"`
	HomeTime  string `json:"home_time"`
	Activity  string `json:"activity"`
	Icon      string `json:"icon"`
}

// DaySchedule is one calendar day, or a block of SpanDays identical
// business days.
type DaySchedule struct {
	DayNumber   int            `json:"day_number"`
	SpanDays    int            `json:"span_days"`
	Label       string         `json:"label"`
	Date        string         `json:"date"`
	Destination string         `json:"destination"`
	Items       []ScheduleItem `json:"items"`
}
