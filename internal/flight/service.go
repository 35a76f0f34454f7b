package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripcost/pkg/cache"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

// Service serves ranked flight options. The unranked candidate set for a
// route and date is cached, ranking is applied per request.
type Service struct {
	cache   cache.Cache
	ttl     time.Duration
	logger  logger.Client
	metrics *metrics.Registry
}

func NewService(cache cache.Cache, ttlMinutes int, logger logger.Client, m *metrics.Registry) *Service {
	return &Service{
		cache:   cache,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		logger:  logger,
		metrics: m,
	}
}

// generateCacheKey creates a deterministic key from the inputs that determine
// the candidate set
func (s *Service) generateCacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s", req.Origin, req.Destination, req.DepartureDate)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

func normalizeRequest(req SearchRequest) SearchRequest {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	req.DepartureDate = strings.TrimSpace(req.DepartureDate)
	req.Priorities = NormalizePriorities(req.Priorities)
	return req
}

// candidates returns the unranked option set, reading through the cache.
// Cache failures are logged and never fail the request.
func (s *Service) candidates(ctx context.Context, req SearchRequest, cacheKey string) ([]FlightOption, bool) {
	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil && cached != "":
		var options []FlightOption
		if err := json.Unmarshal([]byte(cached), &options); err == nil {
			s.logger.Debug("Cache hit for search", logger.Field{Key: "cache_key", Value: cacheKey})
			return options, true
		}
		s.logger.Error("Failed to unmarshal cached data",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
	case err != nil && !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Error("Failed to read cache", logger.Field{Key: "err", Value: err})
	}

	s.logger.Debug("Cache miss for search", logger.Field{Key: "cache_key", Value: cacheKey})

	options := Candidates(req.Origin, req.Destination, req.DepartureDate)

	optionBytes, err := json.Marshal(options)
	if err != nil {
		s.logger.Error("Failed to marshal options", logger.Field{Key: "err", Value: err})
		return options, false
	}

	if err := s.cache.Set(ctx, cacheKey, string(optionBytes), s.ttl); err != nil {
		s.logger.Error("Failed to cache options", logger.Field{Key: "err", Value: err})
	}

	return options, false
}

func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) (*FlightSearchResponse, error) {
	startTime := time.Now()
	req = normalizeRequest(req)
	cacheKey := s.generateCacheKey(req)

	options, hit := s.candidates(ctx, req, cacheKey)
	s.metrics.FlightSearches.WithLabelValues(metrics.CacheLabel(hit)).Inc()

	ranked := Rank(options, req.Priorities)
	return s.buildResponse(req, ranked, cacheKey, hit, startTime), nil
}

// FilterFlights ranks, filters and optionally re-sorts the options for a route.
func (s *Service) FilterFlights(ctx context.Context, req FilterRequest) (*FlightSearchResponse, error) {
	startTime := time.Now()
	search := normalizeRequest(req.SearchRequest)
	cacheKey := s.generateCacheKey(search)

	options, hit := s.candidates(ctx, search, cacheKey)
	s.metrics.FlightSearches.WithLabelValues(metrics.CacheLabel(hit)).Inc()

	flights := Rank(options, search.Priorities)
	if req.Filters != nil {
		flights = Filter(flights, *req.Filters)
	}
	if req.Sort != nil {
		flights = s.applySorting(flights, *req.Sort)
	}

	s.logger.Info("Filtered flights",
		logger.Field{Key: "route", Value: fmt.Sprintf("%s->%s", search.Origin, search.Destination)},
		logger.Field{Key: "before", Value: len(options)},
		logger.Field{Key: "after", Value: len(flights)},
	)

	return s.buildResponse(search, flights, cacheKey, hit, startTime), nil
}

func (s *Service) buildResponse(req SearchRequest, flights []FlightOption, cacheKey string, hit bool, start time.Time) *FlightSearchResponse {
	return &FlightSearchResponse{
		SearchCriteria: SearchCriteria{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
			Priorities:    req.Priorities,
		},
		Metadata: Metadata{
			TotalResults: uint32(len(flights)),
			SearchTimeMs: uint32(time.Since(start).Milliseconds()),
			CacheKey:     cacheKey,
			CacheHit:     hit,
		},
		Flights: flights,
	}
}

// InvalidateCache manually invalidates cache for a specific route
func (s *Service) InvalidateCache(ctx context.Context, req SearchRequest) error {
	cacheKey := s.generateCacheKey(normalizeRequest(req))
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}
