package flight

type Priority string

const (
	PriorityDuration Priority = "duration"
	PriorityRating   Priority = "rating"
	PriorityStops    Priority = "stops"
	PriorityPrice    Priority = "price"
)

type PriceTrend struct {
	EarlierPrice float64 `json:"earlier_price"`
	LaterPrice   float64 `json:"later_price"`
	Message      string  `json:"message"`
}

// FlightOption is a synthesized offer for one route and date. Prices are USD.
type FlightOption struct {
	Airline          string     `json:"airline"`
	AirlineLogo      string     `json:"airline_logo"`
	FlightNumber     string     `json:"flight_number"`
	DepartureTime    string     `json:"departure_time"`
	ArrivalTime      string     `json:"arrival_time"`
	Duration         string     `json:"duration"`
	DurationMinutes  int        `json:"duration_minutes"`
	Stops            int        `json:"stops"`
	StopCities       []string   `json:"stop_cities"`
	Price            float64    `json:"price"`
	Currency         string     `json:"currency"`
	CredibilityScore int        `json:"credibility_score"`
	PriceTrend       PriceTrend `json:"price_trend"`
	Score            *float64   `json:"score,omitempty"`
}

type DepartureTime struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type FilterOptions struct {
	PriceRange    *PriceRange    `json:"price_range,omitempty"`
	MaxStops      *int           `json:"max_stops,omitempty"`
	DepartureTime *DepartureTime `json:"departure_time,omitempty"`
	Airlines      []string       `json:"airlines,omitempty"`
	MaxDuration   *int           `json:"max_duration,omitempty"`
}

type SortOptions struct {
	By    string `json:"by"`    // price, duration, departure_time, best_value
	Order string `json:"order"` // asc, desc
}

type SearchRequest struct {
	Origin        string     `json:"origin" binding:"required,len=3"`
	Destination   string     `json:"destination" binding:"required,len=3"`
	DepartureDate string     `json:"departure_date" binding:"required,datetime=2006-01-02"`
	Priorities    []Priority `json:"priorities,omitempty" binding:"omitempty,dive,oneof=duration rating stops price"`
}

type FilterRequest struct {
	SearchRequest
	Filters *FilterOptions `json:"filters,omitempty"`
	Sort    *SortOptions   `json:"sort,omitempty"`
}

type SearchCriteria struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	Priorities    []Priority `json:"priorities"`
}

type Metadata struct {
	TotalResults uint32 `json:"total_results"`
	SearchTimeMs uint32 `json:"search_time_ms"`
	CacheKey     string `json:"cache_key"`
	CacheHit     bool   `json:"cache_hit"`
}

type FlightSearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Flights        []FlightOption `json:"flights"`
}
