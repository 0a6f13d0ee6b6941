// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gifcamp/gifcamp/internal/logger"
)

// sessionKVRepository is the SQLite-backed implementation of
// [KVRepository]. It maps keys to values in the "session_kv" table and is
// the client-side analogue of the browser's local storage.
type sessionKVRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionKVRepository constructs a [KVRepository] backed by the
// provided database connection and logger.
func NewSessionKVRepository(db *DB, logger *logger.Logger) KVRepository {
	logger.Debug().Msg("creating session kv repository")
	return &sessionKVRepository{
		db:     db,
		logger: logger,
	}
}

// Put upserts value under key. The updated_at column is refreshed on
// every write so a stale session file is distinguishable during support
// sessions.
func (r *sessionKVRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("session_kv").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("key", key).
			Msg("failed to write session key")
		return fmt.Errorf("put session key %q: %w", key, err)
	}

	return nil
}

// Get returns the value stored under key, or [ErrKeyNotFound] when the
// key is absent.
func (r *sessionKVRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("session_kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session key %q: %w", key, err)
	}

	return value, nil
}

// Delete removes the given keys in one statement. Deleting keys that do
// not exist is a no-op, which keeps logout idempotent.
func (r *sessionKVRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete("session_kv").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Strs("keys", keys).
			Msg("failed to delete session keys")
		return fmt.Errorf("delete session keys: %w", err)
	}

	return nil
}
