package flight

import (
	"strings"
)

// filterContext holds parsed data so we don't re-parse inside the loop
type filterContext struct {
	opts    FilterOptions
	depFrom int
	depTo   int
}

func newFilterContext(opts FilterOptions) *filterContext {
	fc := &filterContext{opts: opts}

	if opts.DepartureTime != nil {
		fc.depFrom = parseWindowBound(opts.DepartureTime.From, 0)
		fc.depTo = parseWindowBound(opts.DepartureTime.To, 24*60-1)
	}
	return fc
}

// Filter keeps the options passing every active filter, preserving order.
func Filter(flights []FlightOption, opts FilterOptions) []FlightOption {
	fc := newFilterContext(opts)

	filtered := make([]FlightOption, 0, len(flights))
	for _, f := range flights {
		if fc.matches(f) {
			filtered = append(filtered, f)
		}
	}

	return filtered
}

// matches returns true only if ALL active filters pass
func (fc *filterContext) matches(f FlightOption) bool {
	if fc.opts.PriceRange != nil {
		if f.Price < fc.opts.PriceRange.Low || f.Price > fc.opts.PriceRange.High {
			return false
		}
	}

	if fc.opts.MaxStops != nil && f.Stops > *fc.opts.MaxStops {
		return false
	}

	if fc.opts.MaxDuration != nil && f.DurationMinutes > *fc.opts.MaxDuration {
		return false
	}

	if fc.opts.DepartureTime != nil {
		dep := clockMinutes(f.DepartureTime)
		if dep < fc.depFrom || dep > fc.depTo {
			return false
		}
	}

	// Airlines (String comparison is heaviest, do last)
	if len(fc.opts.Airlines) > 0 {
		matched := false
		for _, name := range fc.opts.Airlines {
			if strings.EqualFold(f.Airline, name) || strings.EqualFold(airlineCode(f.FlightNumber), name) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func parseWindowBound(s string, fallback int) int {
	h, m, ok := ParseClock(s)
	if !ok {
		return fallback
	}
	return h*60 + m
}

// airlineCode is the two-letter prefix of a generated flight number.
func airlineCode(flightNumber string) string {
	if len(flightNumber) < 2 {
		return flightNumber
	}
	return flightNumber[:2]
}
