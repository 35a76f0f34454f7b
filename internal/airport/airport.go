package airport

import (
	"strings"
)

const maxSearchResults = 8

// Airport is identified by its IATA code.
type Airport struct {
	Code    string `json:"code" binding:"required,len=3"`
	Name    string `json:"name"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country"`
}

// Label renders the airport as "City (CODE)".
func (a Airport) Label() string {
	return a.City + " (" + a.Code + ")"
}

// Search returns up to eight airports whose code, city, country or name
// contains query, ignoring case. An empty query matches nothing.
func Search(query string) []Airport {
	q := strings.ToLower(query)
	if q == "" {
		return []Airport{}
	}

	matches := make([]Airport, 0, maxSearchResults)
	for _, a := range airports {
		if !a.matches(q) {
			continue
		}
		matches = append(matches, a)
		if len(matches) == maxSearchResults {
			break
		}
	}
	return matches
}

func (a Airport) matches(q string) bool {
	return strings.Contains(strings.ToLower(a.Code), q) ||
		strings.Contains(strings.ToLower(a.City), q) ||
		strings.Contains(strings.ToLower(a.Country), q) ||
		strings.Contains(strings.ToLower(a.Name), q)
}

// ByCode looks up an airport by IATA code, ignoring case.
func ByCode(code string) (Airport, bool) {
	for _, a := range airports {
		if strings.EqualFold(a.Code, code) {
			return a, true
		}
	}
	return Airport{}, false
}
