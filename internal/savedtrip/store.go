package savedtrip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tripcost/internal/trip"
	"tripcost/pkg/cache"
	"tripcost/pkg/idgen"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"
)

const DefaultKey = "plano_saved_trips"

// SavedTrip is a persisted snapshot of a priced trip. It is never modified
// after it is written.
type SavedTrip struct {
	ID           string       `json:"id"`
	CreatedAt    string       `json:"created_at"`
	Destinations []string     `json:"destinations"`
	TotalCost    float64      `json:"total_cost"`
	Currency     string       `json:"currency"`
	Summary      trip.Summary `json:"summary"`
}

// Store keeps every saved trip as one JSON array under a single key.
type Store struct {
	cache   cache.Cache
	key     string
	ids     idgen.Generator
	now     func() time.Time
	logger  logger.Client
	metrics *metrics.Registry

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func NewStore(c cache.Cache, ids idgen.Generator, logger logger.Client, m *metrics.Registry, opts ...Option) *Store {
	s := &Store{
		cache:   c,
		key:     DefaultKey,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save snapshots summary and puts it at the front of the list.
func (s *Store) Save(ctx context.Context, summary trip.Summary) (_ SavedTrip, err error) {
	defer func() { s.observe("save", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.load(ctx)
	if err != nil {
		return SavedTrip{}, err
	}

	saved := SavedTrip{
		ID:           fmt.Sprintf("trip-%d", s.ids.GenerateID()),
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
		Destinations: destinationLabels(summary),
		TotalCost:    summary.GrandTotal,
		Currency:     summary.Currency,
		Summary:      summary,
	}

	trips = append([]SavedTrip{saved}, trips...)
	if err := s.write(ctx, trips); err != nil {
		return SavedTrip{}, err
	}

	s.logger.Info("Saved trip",
		logger.Field{Key: "id", Value: saved.ID},
		logger.Field{Key: "total_cost", Value: saved.TotalCost},
	)
	return saved, nil
}

// List returns saved trips, newest first.
func (s *Store) List(ctx context.Context) (trips []SavedTrip, err error) {
	defer func() { s.observe("list", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Remove deletes the trip with id. An unknown id is not an error.
func (s *Store) Remove(ctx context.Context, id string) (err error) {
	defer func() { s.observe("remove", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		s.logger.Debug("Saved trip not found", logger.Field{Key: "id", Value: id})
	}
	return s.write(ctx, kept)
}

// Clear drops every saved trip.
func (s *Store) Clear(ctx context.Context) (err error) {
	defer func() { s.observe("clear", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Del(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear saved trips: %w", err)
	}
	return nil
}

// load reads the list. A missing key or an unreadable payload reads as empty.
func (s *Store) load(ctx context.Context) ([]SavedTrip, error) {
	raw, err := s.cache.Get(ctx, s.key)
	if errors.Is(err, cache.ErrCacheMiss) || (err == nil && raw == "") {
		return []SavedTrip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved trips: %w", err)
	}

	var trips []SavedTrip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		s.logger.Error("Discarding unreadable saved trips",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "key", Value: s.key},
		)
		return []SavedTrip{}, nil
	}
	if trips == nil {
		trips = []SavedTrip{}
	}
	return trips, nil
}

func (s *Store) write(ctx context.Context, trips []SavedTrip) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("failed to marshal saved trips: %w", err)
	}
	if err := s.cache.Set(ctx, s.key, string(payload), 0); err != nil {
		return fmt.Errorf("failed to write saved trips: %w", err)
	}
	return nil
}

func (s *Store) observe(op string, err error) {
	s.metrics.SavedTripOps.WithLabelValues(op, metrics.ResultLabel(err)).Inc()
}

func destinationLabels(summary trip.Summary) []string {
	labels := make([]string, len(summary.Destinations))
	for i, d := range summary.Destinations {
		labels[i] = d.Destination.Label()
	}
	return labels
}
