package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateSavedSearch stores a search a user wants to re-run later
func (db *DB) CreateSavedSearch(ctx context.Context, s *SavedSearch) (*SavedSearch, error) {
	var saved SavedSearch
	err := db.pool.QueryRow(ctx,
		`INSERT INTO saved_searches (user_id, name, query, location, experience_years, salary_min, salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, name, query, location, experience_years, salary_min, salary_max, created_at`,
		s.UserID, s.Name, s.Query, s.Location, s.ExperienceYears, s.SalaryMin, s.SalaryMax,
	).Scan(&saved.ID, &saved.UserID, &saved.Name, &saved.Query, &saved.Location,
		&saved.ExperienceYears, &saved.SalaryMin, &saved.SalaryMax, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}
	return &saved, nil
}

// GetSavedSearch retrieves one saved search, or nil if none exists
func (db *DB) GetSavedSearch(ctx context.Context, id uuid.UUID) (*SavedSearch, error) {
	var s SavedSearch
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, query, location, experience_years, salary_min, salary_max, created_at
		 FROM saved_searches WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Query, &s.Location,
		&s.ExperienceYears, &s.SalaryMin, &s.SalaryMax, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}
	return &s, nil
}

// ListSavedSearches returns a user's saved searches, newest first
func (db *DB) ListSavedSearches(ctx context.Context, userID uuid.UUID) ([]SavedSearch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, query, location, experience_years, salary_min, salary_max, created_at
		 FROM saved_searches WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	var searches []SavedSearch
	for rows.Next() {
		var s SavedSearch
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Query, &s.Location,
			&s.ExperienceYears, &s.SalaryMin, &s.SalaryMax, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved searches: %w", err)
	}
	return searches, nil
}

// DeleteSavedSearch removes a saved search
func (db *DB) DeleteSavedSearch(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	return nil
}
