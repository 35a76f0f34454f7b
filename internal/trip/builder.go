package trip

import (
	"fmt"

	"tripcost/internal/airport"
	"tripcost/internal/citydata"
	"tripcost/internal/flight"
	"tripcost/pkg/idgen"
)

// PlanBuilder edits an itinerary the way a trip form does: every leg departs
// from where the previous one arrived, and return legs always target the
// origin. Leg ids come from the injected generator.
type PlanBuilder struct {
	ids        idgen.Generator
	legs       []Leg
	priorities []flight.Priority
	mealTiers  []citydata.MealTier
}

// NewPlanBuilder starts a plan with one empty starting leg.
func NewPlanBuilder(ids idgen.Generator) *PlanBuilder {
	b := &PlanBuilder{ids: ids}
	b.legs = []Leg{b.newLeg(nil, nil, false)}
	return b
}

func (b *PlanBuilder) newLeg(from, to *airport.Airport, isReturn bool) Leg {
	return Leg{
		ID:       legID(b.ids),
		From:     from,
		To:       to,
		IsReturn: isReturn,
	}
}

// Origin is the starting airport, or nil.
func (b *PlanBuilder) Origin() *airport.Airport {
	return b.legs[0].From
}

// SetOrigin sets the first leg's origin and re-targets every return leg.
func (b *PlanBuilder) SetOrigin(a airport.Airport) {
	b.legs[0].From = &a
	for i := 1; i < len(b.legs); i++ {
		if b.legs[i].IsReturn {
			origin := a
			b.legs[i].To = &origin
		}
	}
}

// SetDestination sets where leg i arrives and re-chains the next leg's origin.
func (b *PlanBuilder) SetDestination(i int, a airport.Airport) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.legs[i].To = &a
	if i+1 < len(b.legs) {
		from := a
		b.legs[i+1].From = &from
	}
	return nil
}

func (b *PlanBuilder) SetDate(i int, date string) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.legs[i].DepartureDate = date
	return nil
}

// AddDestination appends a leg departing from the last leg's destination
// and returns its index.
func (b *PlanBuilder) AddDestination() int {
	b.legs = append(b.legs, b.newLeg(b.lastDestination(), nil, false))
	return len(b.legs) - 1
}

// AddReturnHome appends a return leg from the last destination to the origin
// and returns its index.
func (b *PlanBuilder) AddReturnHome() int {
	var to *airport.Airport
	if o := b.Origin(); o != nil {
		origin := *o
		to = &origin
	}
	b.legs = append(b.legs, b.newLeg(b.lastDestination(), to, true))
	return len(b.legs) - 1
}

// HasReturn reports whether any leg is a return leg.
func (b *PlanBuilder) HasReturn() bool {
	for _, l := range b.legs {
		if l.IsReturn {
			return true
		}
	}
	return false
}

// RemoveLeg drops leg i and re-chains the origins of the legs after it.
// The starting leg cannot be removed.
func (b *PlanBuilder) RemoveLeg(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if i == 0 {
		return fmt.Errorf("cannot remove the starting leg")
	}

	b.legs = append(b.legs[:i], b.legs[i+1:]...)
	for j := 1; j < len(b.legs); j++ {
		b.legs[j].From = copyAirport(b.legs[j-1].To)
	}
	return nil
}

// Legs returns a copy of the current legs.
func (b *PlanBuilder) Legs() []Leg {
	out := make([]Leg, len(b.legs))
	for i, l := range b.legs {
		l.From = copyAirport(l.From)
		l.To = copyAirport(l.To)
		out[i] = l
	}
	return out
}

// SetPriorities sets the flight ranking criteria, most important first.
func (b *PlanBuilder) SetPriorities(p []flight.Priority) {
	b.priorities = append([]flight.Priority(nil), p...)
}

// SetMealTiers restricts food pricing to tiers. Nil averages every tier and
// an empty slice prices food at zero.
func (b *PlanBuilder) SetMealTiers(tiers []citydata.MealTier) {
	if tiers == nil {
		b.mealTiers = nil
		return
	}
	b.mealTiers = append([]citydata.MealTier{}, tiers...)
}

// Build returns the plan with the given preferences.
func (b *PlanBuilder) Build(mealsPerDay, hotelStars int) Plan {
	plan := Plan{
		Legs:        b.Legs(),
		MealsPerDay: mealsPerDay,
		HotelStars:  hotelStars,
		Priorities:  append([]flight.Priority(nil), b.priorities...),
	}
	if b.mealTiers != nil {
		plan.MealTiers = append([]citydata.MealTier{}, b.mealTiers...)
	}
	return plan
}

// AssignLegIDs gives every leg without an id a fresh one from ids.
func AssignLegIDs(ids idgen.Generator, legs []Leg) {
	for i := range legs {
		if legs[i].ID == "" {
			legs[i].ID = legID(ids)
		}
	}
}

func legID(ids idgen.Generator) string {
	return fmt.Sprintf("leg-%d", ids.GenerateID())
}

func (b *PlanBuilder) lastDestination() *airport.Airport {
	return copyAirport(b.legs[len(b.legs)-1].To)
}

func (b *PlanBuilder) checkIndex(i int) error {
	if i < 0 || i >= len(b.legs) {
		return fmt.Errorf("leg index %d out of range [0,%d)", i, len(b.legs))
	}
	return nil
}

func copyAirport(a *airport.Airport) *airport.Airport {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
