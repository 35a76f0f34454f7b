package savedtrip

import (
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"tripcost/internal/airport"
	"tripcost/internal/trip"
	"tripcost/pkg/cache"
	"tripcost/pkg/idgen"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

var fixedNow = time.Date(2024, 5, 20, 8, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis, *metrics.Registry) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := metrics.New(prometheus.NewRegistry())
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	store := NewStore(cache.NewRedisCacheWithClient(client), idgen.NewSequence(), logger.NewWithWriter("test", io.Discard), m, opts...)
	return store, mr, m
}

func airportPtr(t *testing.T, code string) *airport.Airport {
	t.Helper()
	a, ok := airport.ByCode(code)
	require.True(t, ok, code)
	return &a
}

func priced(t *testing.T) trip.Summary {
	t.Helper()
	return trip.ComputeTripCost(trip.Plan{
		Legs: []trip.Leg{
			{ID: "leg-1", From: airportPtr(t, "ICN"), To: airportPtr(t, "DXB"), DepartureDate: "2024-06-01"},
			{ID: "leg-2", From: airportPtr(t, "DXB"), To: airportPtr(t, "MIA"), DepartureDate: "2024-06-08"},
			{ID: "leg-3", From: airportPtr(t, "MIA"), To: airportPtr(t, "ICN"), DepartureDate: "2024-06-15", IsReturn: true},
		},
		MealsPerDay: 2,
		HotelStars:  4,
	})
}
