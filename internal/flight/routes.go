package flight

import (
	"fmt"
	"unicode/utf16"
)

type airline struct {
	name        string
	logo        string
	credibility int
}

var airlines = []airline{
	{name: "Korean Air", logo: "🇰🇷", credibility: 92},
	{name: "Singapore Airlines", logo: "🇸🇬", credibility: 96},
	{name: "Emirates", logo: "🇦🇪", credibility: 94},
	{name: "Qatar Airways", logo: "🇶🇦", credibility: 95},
	{name: "Cathay Pacific", logo: "🇭🇰", credibility: 90},
	{name: "ANA", logo: "🇯🇵", credibility: 93},
	{name: "Lufthansa", logo: "🇩🇪", credibility: 88},
	{name: "British Airways", logo: "🇬🇧", credibility: 87},
	{name: "Delta", logo: "🇺🇸", credibility: 85},
	{name: "United Airlines", logo: "🇺🇸", credibility: 83},
	{name: "Turkish Airlines", logo: "🇹🇷", credibility: 86},
	{name: "Etihad Airways", logo: "🇦🇪", credibility: 91},
}

var transitCities = []string{"Dubai", "Istanbul", "Singapore", "Tokyo", "Hong Kong", "Doha", "Amsterdam", "Frankfurt"}

// Base one-way economy fares in USD, keyed "FROM-TO". Either direction matches.
var routePrices = map[string]int{
	"ICN-DXB": 650, "ICN-MIA": 950, "ICN-JFK": 850, "ICN-LAX": 750,
	"ICN-LHR": 700, "ICN-CDG": 720, "ICN-NRT": 200, "ICN-SIN": 400,
	"ICN-BKK": 350, "ICN-HKG": 300, "ICN-SFO": 780, "ICN-FRA": 680,
	"ICN-CGK": 420, "ICN-DPS": 450, "ICN-TPE": 220,
	"DXB-MIA": 800, "DXB-JFK": 750, "DXB-LHR": 400, "DXB-SIN": 450,
	"MIA-JFK": 200, "MIA-LAX": 250, "JFK-LHR": 450, "JFK-CDG": 480,
	"LHR-CDG": 120, "SIN-BKK": 150, "SIN-HKG": 200,
	"NRT-LAX": 700, "NRT-SFO": 680, "NRT-SIN": 400,
	"CGK-SIN": 150, "CGK-BKK": 250, "CGK-DXB": 550, "CGK-NRT": 400,
	"DPS-SIN": 200, "DPS-CGK": 80, "TPE-NRT": 220, "TPE-HKG": 180,
}

// Base nonstop durations in minutes.
var routeDurations = map[string]int{
	"ICN-DXB": 570, "ICN-MIA": 1080, "ICN-JFK": 840, "ICN-LAX": 690,
	"ICN-LHR": 720, "ICN-CDG": 740, "ICN-NRT": 150, "ICN-SIN": 390,
	"ICN-BKK": 330, "ICN-HKG": 240, "ICN-SFO": 660, "ICN-FRA": 690,
	"ICN-CGK": 420, "ICN-DPS": 450, "ICN-TPE": 160,
	"DXB-MIA": 960, "DXB-JFK": 870, "DXB-LHR": 450, "DXB-SIN": 420,
	"MIA-JFK": 180, "MIA-LAX": 330, "JFK-LHR": 420, "JFK-CDG": 450,
	"CGK-SIN": 120, "CGK-BKK": 210, "CGK-DXB": 510, "CGK-NRT": 420,
	"DPS-SIN": 160, "TPE-NRT": 180, "TPE-HKG": 120,
}

func basePrice(from, to string) int {
	return routeLookup(routePrices, from, to, 500, 800)
}

func baseDuration(from, to string) int {
	return routeLookup(routeDurations, from, to, 300, 600)
}

// routeLookup falls back to floor + |hash| mod span for pairs missing from table.
func routeLookup(table map[string]int, from, to string, floor, span int64) int {
	key := fmt.Sprintf("%s-%s", from, to)
	if v, ok := table[key]; ok {
		return v
	}
	if v, ok := table[fmt.Sprintf("%s-%s", to, from)]; ok {
		return v
	}
	return int(floor + abs64(int64(hashString(key)))%span)
}

// hashString is the 31-multiplier string hash over UTF-16 code units with
// 32-bit wraparound.
func hashString(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// rng is a Park-Miller minimal standard generator. The zero seed maps to 1.
type rng struct {
	state int64
}

func newRNG(seed int32) *rng {
	s := abs64(int64(seed))
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

// next returns a value in [0, 1).
func (r *rng) next() float64 {
	r.state = (r.state * lcgMultiplier) % lcgModulus
	return float64(r.state) / lcgModulus
}

// intn returns floor(next() * n).
func (r *rng) intn(n int) int {
	return int(r.next() * float64(n))
}
