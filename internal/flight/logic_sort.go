package flight

import (
	"sort"

	"tripcost/pkg/logger"
)

// Desirability scales. A value at or beyond the scale scores 0.
const (
	durationScaleMinutes = 2000.0
	priceScaleUSD        = 2000.0
	maxStopsScale        = 3.0
)

// NormalizePriorities drops unknown and repeated criteria, keeping first
// occurrence order. An empty result becomes rating only.
func NormalizePriorities(priorities []Priority) []Priority {
	seen := make(map[Priority]bool, len(priorities))
	out := make([]Priority, 0, len(priorities))
	for _, p := range priorities {
		switch p {
		case PriorityDuration, PriorityRating, PriorityStops, PriorityPrice:
		default:
			continue
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return []Priority{PriorityRating}
	}
	return out
}

// Rank returns a copy of options sorted by descending blended score. Each
// option's Score is set. Equal scores keep their input order.
func Rank(options []FlightOption, priorities []Priority) []FlightOption {
	ranked := make([]FlightOption, len(options))
	copy(ranked, options)

	pris := NormalizePriorities(priorities)
	for i := range ranked {
		score := blendedScore(ranked[i], pris)
		ranked[i].Score = &score
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Score > *ranked[j].Score
	})
	return ranked
}

func blendedScore(f FlightOption, pris []Priority) float64 {
	w := 1 / float64(len(pris))
	score := 0.0
	for _, p := range pris {
		score += criterionScore(f, p) * w
	}
	return score
}

func criterionScore(f FlightOption, p Priority) float64 {
	switch p {
	case PriorityDuration:
		return clamp01(1 - float64(f.DurationMinutes)/durationScaleMinutes)
	case PriorityRating:
		return clamp01(float64(f.CredibilityScore) / 100)
	case PriorityStops:
		return clamp01(1 - float64(f.Stops)/maxStopsScale)
	case PriorityPrice:
		return clamp01(1 - f.Price/priceScaleUSD)
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applySorting reorders a result set by an explicit sort key. best_value keeps
// the priority ranking, ascending order reverses it.
func (s *Service) applySorting(flights []FlightOption, sortOpt SortOptions) []FlightOption {
	if len(flights) <= 1 {
		return flights
	}

	sorted := make([]FlightOption, len(flights))
	copy(sorted, flights)

	switch sortOpt.By {
	case "price":
		sortByPrice(sorted, sortOpt.Order)
	case "duration":
		sortByDuration(sorted, sortOpt.Order)
	case "departure_time":
		sortByDepartureTime(sorted, sortOpt.Order)
	case "best_value":
		sortByScore(sorted, sortOpt.Order)
	default:
		s.logger.Warn("invalid_sort_criteria", logger.Field{Key: "sort_by", Value: sortOpt.By})
	}

	return sorted
}

// Using SliceStable so equal values keep their ranked order.
func sortByPrice(flights []FlightOption, order string) {
	sort.SliceStable(flights, func(i, j int) bool {
		if order == "desc" {
			return flights[i].Price > flights[j].Price
		}
		return flights[i].Price < flights[j].Price
	})
}

func sortByDuration(flights []FlightOption, order string) {
	sort.SliceStable(flights, func(i, j int) bool {
		if order == "desc" {
			return flights[i].DurationMinutes > flights[j].DurationMinutes
		}
		return flights[i].DurationMinutes < flights[j].DurationMinutes
	})
}

func sortByDepartureTime(flights []FlightOption, order string) {
	sort.SliceStable(flights, func(i, j int) bool {
		if order == "desc" {
			return clockMinutes(flights[i].DepartureTime) > clockMinutes(flights[j].DepartureTime)
		}
		return clockMinutes(flights[i].DepartureTime) < clockMinutes(flights[j].DepartureTime)
	})
}

func sortByScore(flights []FlightOption, order string) {
	sort.SliceStable(flights, func(i, j int) bool {
		scoreI, scoreJ := 0.0, 0.0
		if flights[i].Score != nil {
			scoreI = *flights[i].Score
		}
		if flights[j].Score != nil {
			scoreJ = *flights[j].Score
		}

		if order == "asc" {
			return scoreI < scoreJ
		}
		return scoreI > scoreJ
	})
}

func clockMinutes(s string) int {
	h, m, ok := ParseClock(s)
	if !ok {
		return -1
	}
	return h*60 + m
}
