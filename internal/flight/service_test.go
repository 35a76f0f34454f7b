package flight

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcost/pkg/cache"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis, *metrics.Registry) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(cache.NewRedisCacheWithClient(client), 10, logger.NewWithWriter("test", io.Discard), m)
	return svc, mr, m
}

func TestService_SearchFlights_CacheAside(t *testing.T) {
	svc, mr, m := newTestService(t)
	ctx := context.Background()
	req := SearchRequest{Origin: "icn", Destination: "DXB", DepartureDate: "2024-06-01"}

	first, err := svc.SearchFlights(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, "ICN", first.SearchCriteria.Origin)
	assert.Equal(t, []Priority{PriorityRating}, first.SearchCriteria.Priorities)
	assert.EqualValues(t, 4, first.Metadata.TotalResults)
	assert.True(t, mr.Exists(first.Metadata.CacheKey))
	assert.Equal(t, 10*time.Minute, mr.TTL(first.Metadata.CacheKey))

	second, err := svc.SearchFlights(ctx, SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01", Priorities: []Priority{PriorityPrice}})
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Metadata.CacheKey, second.Metadata.CacheKey)
	assert.Equal(t, []string{"KO266", "AN149", "QA729", "DE180"}, flightNumbers(second.Flights))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlightSearches.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlightSearches.WithLabelValues("hit")))
}

func TestService_SearchFlights_CacheMatchesGenerator(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	req := SearchRequest{Origin: "DXB", Destination: "MIA", DepartureDate: "2024-06-08", Priorities: []Priority{PriorityDuration}}

	_, err := svc.SearchFlights(ctx, req)
	require.NoError(t, err)
	cached, err := svc.SearchFlights(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, Generate("DXB", "MIA", "2024-06-08", req.Priorities), cached.Flights)
}

func TestService_SearchFlights_CorruptCacheEntryIsRegenerated(t *testing.T) {
	svc, mr, _ := newTestService(t)
	req := SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01"}
	key := svc.generateCacheKey(req)
	require.NoError(t, mr.Set(key, "{not json"))

	resp, err := svc.SearchFlights(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Metadata.CacheHit)
	assert.Len(t, resp.Flights, 4)
}

func TestService_SearchFlights_CacheDownStillServes(t *testing.T) {
	svc, mr, _ := newTestService(t)
	mr.Close()

	resp, err := svc.SearchFlights(context.Background(), SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01"})
	require.NoError(t, err)
	assert.False(t, resp.Metadata.CacheHit)
	assert.Len(t, resp.Flights, 4)
}

func TestService_FilterFlights(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.FilterFlights(context.Background(), FilterRequest{
		SearchRequest: SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01"},
		Filters:       &FilterOptions{MaxStops: intPtr(1)},
		Sort:          &SortOptions{By: "price", Order: "desc"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"DE180", "AN149", "KO266"}, flightNumbers(resp.Flights))
	assert.EqualValues(t, 3, resp.Metadata.TotalResults)
}

func TestService_FilterFlights_UnknownSortKeepsRanking(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.FilterFlights(context.Background(), FilterRequest{
		SearchRequest: SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01"},
		Sort:          &SortOptions{By: "comfort"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"QA729", "AN149", "KO266", "DE180"}, flightNumbers(resp.Flights))
}

func TestService_InvalidateCache(t *testing.T) {
	svc, mr, _ := newTestService(t)
	ctx := context.Background()
	req := SearchRequest{Origin: "ICN", Destination: "DXB", DepartureDate: "2024-06-01"}

	resp, err := svc.SearchFlights(ctx, req)
	require.NoError(t, err)
	require.True(t, mr.Exists(resp.Metadata.CacheKey))

	require.NoError(t, svc.InvalidateCache(ctx, req))
	assert.False(t, mr.Exists(resp.Metadata.CacheKey))

	_, err = svc.cache.Get(ctx, resp.Metadata.CacheKey)
	assert.True(t, errors.Is(err, cache.ErrCacheMiss))
}

func TestApplySorting(t *testing.T) {
	svc, _, _ := newTestService(t)
	ranked := Rank(sampleOptions(), []Priority{PriorityDuration})

	byDeparture := svc.applySorting(ranked, SortOptions{By: "departure_time"})
	assert.Equal(t, []string{"KO266", "DE180", "AN149", "QA729"}, flightNumbers(byDeparture))

	byDuration := svc.applySorting(ranked, SortOptions{By: "duration", Order: "desc"})
	assert.Equal(t, []string{"QA729", "KO266", "DE180", "AN149"}, flightNumbers(byDuration))

	worstFirst := svc.applySorting(ranked, SortOptions{By: "best_value", Order: "asc"})
	assert.Equal(t, []string{"QA729", "KO266", "DE180", "AN149"}, flightNumbers(worstFirst))
}
