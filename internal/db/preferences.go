package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetPreferences retrieves a user's notification preferences, or nil if the
// user has never set any
func (db *DB) GetPreferences(ctx context.Context, userID uuid.UUID) (*Preferences, error) {
	var p Preferences
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, email_matches, email_digest, digest_day, updated_at
		 FROM notification_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.EmailMatches, &p.EmailDigest, &p.DigestDay, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}

// UpsertPreferences creates or replaces a user's notification preferences
func (db *DB) UpsertPreferences(ctx context.Context, p *Preferences) (*Preferences, error) {
	var saved Preferences
	err := db.pool.QueryRow(ctx,
		`INSERT INTO notification_preferences (user_id, email_matches, email_digest, digest_day)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		   email_matches = $2, email_digest = $3, digest_day = $4, updated_at = NOW()
		 RETURNING user_id, email_matches, email_digest, digest_day, updated_at`,
		p.UserID, p.EmailMatches, p.EmailDigest, p.DigestDay,
	).Scan(&saved.UserID, &saved.EmailMatches, &saved.EmailDigest, &saved.DigestDay, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return &saved, nil
}

// DeletePreferences removes a user's notification preferences
func (db *DB) DeletePreferences(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM notification_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}
