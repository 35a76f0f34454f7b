package trip

import (
	"fmt"

	"tripcost/internal/airport"
	"tripcost/internal/apperr"
)

// ResolveAirports fills in airports given by code only from the airport
// table. Airports that already carry a city are left alone.
func ResolveAirports(legs []Leg) error {
	for i := range legs {
		if err := resolve(&legs[i].From); err != nil {
			return apperr.Validation(fmt.Sprintf("legs[%d].from: %v", i, err), nil)
		}
		if err := resolve(&legs[i].To); err != nil {
			return apperr.Validation(fmt.Sprintf("legs[%d].to: %v", i, err), nil)
		}
	}
	return nil
}

func resolve(a **airport.Airport) error {
	if *a == nil || (*a).City != "" {
		return nil
	}
	found, ok := airport.ByCode((*a).Code)
	if !ok {
		return fmt.Errorf("unknown airport %q", (*a).Code)
	}
	*a = &found
	return nil
}
