package trip

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tripcost/internal/airport"
	"tripcost/pkg/idgen"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

func newTestService(t *testing.T) (*Service, *metrics.Registry, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	m := metrics.New(prometheus.NewRegistry())
	return NewService(logger.NewWithWriter("test", io.Discard), m, idgen.NewSequence(), tp), m, recorder
}

func TestService_Compute(t *testing.T) {
	svc, m, recorder := newTestService(t)

	summary, err := svc.Compute(context.Background(), seoulDubaiMiami())
	require.NoError(t, err)

	assert.Equal(t, 8233.0, summary.GrandTotal)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TripsComputed))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "trip.Compute", spans[0].Name())
}

func TestService_Compute_ResolvesCodesAndAssignsLegIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	plan := seoulDubaiMiami()
	for i := range plan.Legs {
		plan.Legs[i].ID = ""
		plan.Legs[i].From = &airport.Airport{Code: plan.Legs[i].From.Code}
		plan.Legs[i].To = &airport.Airport{Code: plan.Legs[i].To.Code}
	}
	plan.Legs[1].ID = "leg-kept"

	summary, err := svc.Compute(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, 8233.0, summary.GrandTotal)
	assert.Equal(t, "Dubai", summary.Destinations[0].Destination.City)
	assert.Equal(t, 9, summary.Destinations[0].HomeTimezoneOffset)
	assert.Equal(t, []string{"leg-1", "leg-kept", "leg-2"},
		[]string{summary.Destinations[0].LegID, summary.Destinations[1].LegID, summary.Destinations[2].LegID})

	// The caller's plan is left as it was.
	assert.Empty(t, plan.Legs[0].ID)
	assert.Empty(t, plan.Legs[0].To.City)
}

func TestService_Compute_UnknownAirportCode(t *testing.T) {
	svc, m, _ := newTestService(t)
	plan := seoulDubaiMiami()
	plan.Legs[0].To = &airport.Airport{Code: "ZZZ"}

	summary, err := svc.Compute(context.Background(), plan)

	assert.Nil(t, summary)
	assert.ErrorContains(t, err, `legs[0].to: unknown airport "ZZZ"`)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TripsComputed))
}

func TestService_Compute_InvalidPlan(t *testing.T) {
	svc, m, recorder := newTestService(t)
	plan := seoulDubaiMiami()
	plan.HotelStars = 7

	summary, err := svc.Compute(context.Background(), plan)

	assert.Nil(t, summary)
	assert.Error(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TripsComputed))
	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, "invalid plan", recorder.Ended()[0].Status().Description)
}

func TestService_Compare(t *testing.T) {
	svc, m, _ := newTestService(t)

	luxury := seoulDubaiMiami()
	luxury.HotelStars = 5
	luxury.MealsPerDay = 3
	budget := seoulDubaiMiami()
	budget.HotelStars = 3
	budget.MealsPerDay = 1

	result, err := svc.Compare(context.Background(), []Plan{luxury, seoulDubaiMiami(), budget})
	require.NoError(t, err)

	require.Len(t, result.Summaries, 3)
	assert.Equal(t, 8233.0, result.Summaries[1].GrandTotal)
	assert.Greater(t, result.Summaries[0].GrandTotal, result.Summaries[1].GrandTotal)
	assert.Less(t, result.Summaries[2].GrandTotal, result.Summaries[1].GrandTotal)
	assert.Equal(t, 2, result.CheapestIndex)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TripsComputed))
}

func TestService_Compare_Rejects(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Compare(context.Background(), nil)
	assert.ErrorContains(t, err, "between 1 and 10")

	bad := seoulDubaiMiami()
	bad.MealsPerDay = 0
	_, err = svc.Compare(context.Background(), []Plan{seoulDubaiMiami(), bad})
	assert.ErrorContains(t, err, "plans[1]")
}

func TestService_Compare_CancelledContext(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Compare(ctx, []Plan{seoulDubaiMiami()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ScheduleAndReprice(t *testing.T) {
	svc, _, recorder := newTestService(t)
	summary, err := svc.Compute(context.Background(), seoulDubaiMiami())
	require.NoError(t, err)

	days := svc.Schedule(context.Background(), *summary)
	assert.Len(t, days, 7)

	r := svc.Reprice(context.Background(), summary.Destinations[1], Selection{})
	assert.Equal(t, summary.Destinations[1].Subtotal, r.Subtotal)

	assert.Len(t, recorder.Ended(), 3)
}
