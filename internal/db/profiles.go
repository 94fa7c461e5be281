package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetProfile retrieves a user's stored profile, or nil if none exists
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*StoredProfile, error) {
	var p StoredProfile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, skills, summary, desired_role, locations,
		        experience_years, salary_min, salary_max, created_at, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Skills, &p.Summary, &p.DesiredRole, &p.Locations,
		&p.ExperienceYears, &p.SalaryMin, &p.SalaryMax, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile creates or replaces a user's stored profile
func (db *DB) UpsertProfile(ctx context.Context, p *StoredProfile) (*StoredProfile, error) {
	var saved StoredProfile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO user_profiles (user_id, skills, summary, desired_role, locations,
		                            experience_years, salary_min, salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		   skills = $2, summary = $3, desired_role = $4, locations = $5,
		   experience_years = $6, salary_min = $7, salary_max = $8, updated_at = NOW()
		 RETURNING user_id, skills, summary, desired_role, locations,
		           experience_years, salary_min, salary_max, created_at, updated_at`,
		p.UserID, p.Skills, p.Summary, p.DesiredRole, p.Locations,
		p.ExperienceYears, p.SalaryMin, p.SalaryMax,
	).Scan(&saved.UserID, &saved.Skills, &saved.Summary, &saved.DesiredRole, &saved.Locations,
		&saved.ExperienceYears, &saved.SalaryMin, &saved.SalaryMax, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &saved, nil
}

// DeleteProfile removes a user's stored profile
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
