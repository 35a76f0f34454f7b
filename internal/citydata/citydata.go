package citydata

// MealTier names a meal price level.
type MealTier string

const (
	MealBudget MealTier = "budget"
	MealMid    MealTier = "mid"
	MealFine   MealTier = "fine"
)

// TransportTemplate describes one ground-transport mode in a city.
// A template with TripsPerDay == 0 is an airport transfer.
type TransportTemplate struct {
	Type        string  `json:"type"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	CostPerTrip float64 `json:"cost_per_trip"`
	TripsPerDay int     `json:"trips_per_day"`
	Notes       string  `json:"notes"`
}

// IsAirportTransfer reports whether the template is billed once each way
// instead of per day.
func (t TransportTemplate) IsAirportTransfer() bool {
	return t.TripsPerDay == 0
}

type MealCost struct {
	Tier    MealTier `json:"tier"`
	Label   string   `json:"label"`
	AvgCost float64  `json:"avg_cost"`
}

type HotelTemplate struct {
	Name          string  `json:"name"`
	Stars         int     `json:"stars"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Neighborhood  string  `json:"neighborhood"`
}

// CityData is the static cost reference for one city. All prices are USD.
type CityData struct {
	MainMode              string              `json:"main_mode"`
	Transport             []TransportTemplate `json:"transport"`
	Meals                 []MealCost          `json:"meals"`
	Hotels                []HotelTemplate     `json:"hotels"`
	Timezone              string              `json:"timezone"`
	TimezoneOffset        int                 `json:"timezone_offset"`
	Currency              string              `json:"currency"`
	CurrencySymbol        string              `json:"currency_symbol"`
	ExchangeRateToUSD     float64             `json:"exchange_rate_to_usd"`
	AirportToHotelKm      int                 `json:"airport_to_hotel_km"`
	AirportToHotelMinutes int                 `json:"airport_to_hotel_minutes"`
}

// Lookup returns the reference data for city, or the default entry when the
// city is unknown. The result is a copy and may be modified by the caller.
func Lookup(city string) CityData {
	if c, ok := cities[city]; ok {
		return c.clone()
	}
	return defaultCity.clone()
}

func (c CityData) clone() CityData {
	out := c
	out.Transport = append([]TransportTemplate(nil), c.Transport...)
	out.Meals = append([]MealCost(nil), c.Meals...)
	out.Hotels = append([]HotelTemplate(nil), c.Hotels...)
	return out
}
