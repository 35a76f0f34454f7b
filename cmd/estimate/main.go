package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tripcost/internal/airport"
	"tripcost/internal/citydata"
	"tripcost/internal/flight"
	"tripcost/internal/trip"
	"tripcost/pkg/idgen"
)

type output struct {
	Summary  trip.Summary       `json:"summary"`
	Schedule []trip.DaySchedule `json:"schedule,omitempty"`
}

type options struct {
	planPath   string
	route      string
	meals      int
	stars      int
	priorities string
	mealTiers  string
	schedule   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.planPath, "plan", "-", "trip plan JSON file, - for stdin")
	flag.StringVar(&opts.route, "route", "", `itinerary instead of -plan, e.g. "ICN>DXB@2024-06-01>MIA@2024-06-08>home@2024-06-15"`)
	flag.IntVar(&opts.meals, "meals", 2, "meals per day (with -route)")
	flag.IntVar(&opts.stars, "stars", 4, "hotel stars (with -route)")
	flag.StringVar(&opts.priorities, "priorities", "", "comma separated flight priorities (with -route)")
	flag.StringVar(&opts.mealTiers, "meal-tiers", "", "comma separated meal tiers, empty averages all (with -route)")
	flag.BoolVar(&opts.schedule, "schedule", true, "include the day-by-day schedule")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	ids := idgen.NewSequence()

	var plan trip.Plan
	if opts.route != "" {
		built, err := buildRoute(ids, opts)
		if err != nil {
			return err
		}
		plan = built
	} else {
		decoded, err := readPlan(opts.planPath, stdin)
		if err != nil {
			return err
		}
		plan = decoded
	}

	if err := trip.ResolveAirports(plan.Legs); err != nil {
		return err
	}
	if err := trip.ValidatePlan(plan); err != nil {
		return err
	}
	trip.AssignLegIDs(ids, plan.Legs)

	out := output{Summary: trip.ComputeTripCost(plan)}
	if opts.schedule {
		out.Schedule = trip.BuildSchedule(out.Summary)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readPlan(path string, stdin io.Reader) (trip.Plan, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return trip.Plan{}, fmt.Errorf("failed to open plan: %w", err)
		}
		defer f.Close()
		in = f
	}

	var plan trip.Plan
	if err := json.NewDecoder(in).Decode(&plan); err != nil {
		return trip.Plan{}, fmt.Errorf("failed to decode plan: %w", err)
	}
	return plan, nil
}

// buildRoute turns "ORIGIN>CODE@DATE>...>home@DATE" into a plan. A "home"
// stop adds the return leg and must come last.
func buildRoute(ids idgen.Generator, opts options) (trip.Plan, error) {
	stops := strings.Split(opts.route, ">")
	if len(stops) < 2 {
		return trip.Plan{}, fmt.Errorf("route %q needs an origin and at least one stop", opts.route)
	}

	origin, ok := airport.ByCode(strings.TrimSpace(stops[0]))
	if !ok {
		return trip.Plan{}, fmt.Errorf("route: unknown origin %q", stops[0])
	}

	b := trip.NewPlanBuilder(ids)
	b.SetOrigin(origin)
	for i, stop := range stops[1:] {
		code, date, found := strings.Cut(strings.TrimSpace(stop), "@")
		if !found {
			return trip.Plan{}, fmt.Errorf("route stop %q: want CODE@YYYY-MM-DD", stop)
		}
		if b.HasReturn() {
			return trip.Plan{}, fmt.Errorf("route stop %q: nothing can follow home", stop)
		}

		var idx int
		switch {
		case strings.EqualFold(code, "home"):
			if i == 0 {
				return trip.Plan{}, fmt.Errorf("route: first stop cannot be home")
			}
			idx = b.AddReturnHome()
		default:
			dest, ok := airport.ByCode(code)
			if !ok {
				return trip.Plan{}, fmt.Errorf("route: unknown airport %q", code)
			}
			if i > 0 {
				idx = b.AddDestination()
			}
			if err := b.SetDestination(idx, dest); err != nil {
				return trip.Plan{}, err
			}
		}
		if err := b.SetDate(idx, date); err != nil {
			return trip.Plan{}, err
		}
	}

	if opts.priorities != "" {
		var ps []flight.Priority
		for _, p := range strings.Split(opts.priorities, ",") {
			ps = append(ps, flight.Priority(strings.TrimSpace(p)))
		}
		b.SetPriorities(ps)
	}
	if opts.mealTiers != "" {
		var tiers []citydata.MealTier
		for _, t := range strings.Split(opts.mealTiers, ",") {
			tiers = append(tiers, citydata.MealTier(strings.TrimSpace(t)))
		}
		b.SetMealTiers(tiers)
	}

	return b.Build(opts.meals, opts.stars), nil
}
