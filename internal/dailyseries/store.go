// Package dailyseries tracks which series air daily rather than in
// seasons. The metadata mapper consults it to override the series type.
package dailyseries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is a SQLite-backed set of daily-series tvdb ids.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewStore creates a Store on an open database handle.
func NewStore(db *sql.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "dailyseries").Logger(),
	}
}

// IsDailySeries reports whether the given tvdb id is a known daily series.
func (s *Store) IsDailySeries(ctx context.Context, tvdbID int) (bool, error) {
	var id int
	err := s.db.QueryRowContext(ctx, "SELECT tvdb_id FROM daily_series WHERE tvdb_id = ?", tvdbID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query daily series: %w", err)
	}
	return true, nil
}

// Add records a series as daily.
func (s *Store) Add(ctx context.Context, tvdbID int, title string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO daily_series (tvdb_id, title) VALUES (?, ?) ON CONFLICT(tvdb_id) DO UPDATE SET title = excluded.title",
		tvdbID, title)
	if err != nil {
		return fmt.Errorf("failed to add daily series: %w", err)
	}
	s.logger.Debug().Int("tvdbId", tvdbID).Str("title", title).Msg("Added daily series")
	return nil
}

// Remove deletes a series from the daily set.
func (s *Store) Remove(ctx context.Context, tvdbID int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM daily_series WHERE tvdb_id = ?", tvdbID)
	if err != nil {
		return fmt.Errorf("failed to remove daily series: %w", err)
	}
	return nil
}

// All returns every known daily-series tvdb id.
func (s *Store) All(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT tvdb_id FROM daily_series ORDER BY tvdb_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list daily series: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan daily series row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
