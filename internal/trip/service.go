package trip

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"tripcost/pkg/idgen"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

const tracerName = "tripcost/internal/trip"

// maxComparePlans bounds one Compare call.
const maxComparePlans = 10

// Service validates plans and wraps the pricing engine with tracing, metrics
// and logging.
type Service struct {
	logger  logger.Client
	metrics *metrics.Registry
	ids     idgen.Generator
	tracer  trace.Tracer
}

// NewService builds a Service. Legs that arrive without an id get one from
// ids. A nil tp uses the global tracer provider.
func NewService(logger logger.Client, m *metrics.Registry, ids idgen.Generator, tp trace.TracerProvider) *Service {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Service{
		logger:  logger,
		metrics: m,
		ids:     ids,
		tracer:  tp.Tracer(tracerName),
	}
}

type CompareResult struct {
	Summaries     []Summary `json:"summaries"`
	CheapestIndex int       `json:"cheapest_index"`
}

// Compute validates plan and prices it.
func (s *Service) Compute(ctx context.Context, plan Plan) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "trip.Compute", trace.WithAttributes(
		attribute.Int("trip.legs", len(plan.Legs)),
		attribute.Int("trip.meals_per_day", plan.MealsPerDay),
		attribute.Int("trip.hotel_stars", plan.HotelStars),
	))
	defer span.End()

	plan, err := s.prepare(plan)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid plan")
		s.logger.Warn("Rejected trip plan", logger.Field{Key: "err", Value: err})
		return nil, err
	}

	summary := s.compute(ctx, plan)
	span.SetAttributes(
		attribute.Int("trip.destinations", len(summary.Destinations)),
		attribute.Float64("trip.grand_total", summary.GrandTotal),
	)
	return &summary, nil
}

// prepare resolves code-only airports and validates plan, then gives
// id-less legs an id. The caller's legs are not modified.
func (s *Service) prepare(plan Plan) (Plan, error) {
	plan.Legs = append([]Leg(nil), plan.Legs...)
	if err := ResolveAirports(plan.Legs); err != nil {
		return Plan{}, err
	}
	if err := ValidatePlan(plan); err != nil {
		return Plan{}, err
	}
	AssignLegIDs(s.ids, plan.Legs)
	return plan, nil
}

func (s *Service) compute(ctx context.Context, plan Plan) Summary {
	start := time.Now()
	summary := ComputeTripCost(plan)
	elapsed := time.Since(start)

	s.metrics.TripsComputed.Inc()
	s.metrics.ComputeDuration.Observe(elapsed.Seconds())

	fields := []logger.Field{
		{Key: "legs", Value: len(plan.Legs)},
		{Key: "destinations", Value: len(summary.Destinations)},
		{Key: "grand_total", Value: summary.GrandTotal},
		{Key: "duration_ms", Value: elapsed.Milliseconds()},
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields, logger.Field{Key: "trace_id", Value: sc.TraceID().String()})
	}
	s.logger.Info("Computed trip cost", fields...)
	return summary
}

// Compare prices several plans concurrently. Results keep input order.
// The cheapest plan is the lowest grand total, first wins ties.
func (s *Service) Compare(ctx context.Context, plans []Plan) (*CompareResult, error) {
	ctx, span := s.tracer.Start(ctx, "trip.Compare", trace.WithAttributes(attribute.Int("trip.plans", len(plans))))
	defer span.End()

	if len(plans) == 0 || len(plans) > maxComparePlans {
		err := validationf("plans must hold between 1 and %d entries, got %d", maxComparePlans, len(plans))
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	prepared := make([]Plan, len(plans))
	for i, p := range plans {
		plan, err := s.prepare(p)
		if err != nil {
			err = fmt.Errorf("plans[%d]: %w", i, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid plan")
			return nil, err
		}
		prepared[i] = plan
	}

	summaries := make([]Summary, len(prepared))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range prepared {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summaries[i] = s.compute(gctx, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "compare aborted")
		return nil, err
	}

	cheapest := 0
	for i := range summaries {
		if summaries[i].GrandTotal < summaries[cheapest].GrandTotal {
			cheapest = i
		}
	}
	span.SetAttributes(attribute.Int("trip.cheapest_index", cheapest))

	return &CompareResult{Summaries: summaries, CheapestIndex: cheapest}, nil
}

func (s *Service) Schedule(ctx context.Context, summary Summary) []DaySchedule {
	_, span := s.tracer.Start(ctx, "trip.Schedule")
	defer span.End()

	days := BuildSchedule(summary)
	span.SetAttributes(attribute.Int("trip.schedule_days", len(days)))
	return days
}

func (s *Service) Reprice(ctx context.Context, dest DestinationCost, sel Selection) Repriced {
	_, span := s.tracer.Start(ctx, "trip.Reprice")
	defer span.End()

	return Reprice(dest, sel)
}
