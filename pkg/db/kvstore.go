package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tripcost/pkg/cache"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`
	upsertQuery   = `INSERT INTO kv_store (key, value, expires_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`
	purgeQuery  = `DELETE FROM kv_store WHERE expires_at IS NOT NULL AND expires_at <= $1`
	deleteQuery = `DELETE FROM kv_store WHERE key = $1`
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// KVStore implements cache.Cache on the kv_store table, for deployments
// that keep saved trips in Postgres instead of Redis.
type KVStore struct {
	db  SQLExecutor
	now func() time.Time
}

var _ cache.Cache = (*KVStore)(nil)

func NewKVStore(executor SQLExecutor) *KVStore {
	return &KVStore{db: executor, now: time.Now}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	rows, err := s.db.QueryContext(ctx, getValueQuery, key, s.now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to query key %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", fmt.Errorf("failed to read key %q: %w", key, err)
		}
		return "", cache.ErrCacheMiss
	}

	var value string
	if err := rows.Scan(&value); err != nil {
		return "", fmt.Errorf("failed to scan key %q: %w", key, err)
	}
	return value, nil
}

// Set upserts key and drops expired rows in the same transaction.
func (s *KVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	now := s.now().UTC()
	var expiresAt any
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	err := s.db.WithTransaction(ctx, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, purgeQuery, now); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, upsertQuery, key, value, expiresAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Del(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping kv store: %w", err)
	}
	return nil
}
