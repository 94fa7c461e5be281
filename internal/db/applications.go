package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateApplication records a new job application for a user
func (db *DB) CreateApplication(ctx context.Context, a *Application) (*Application, error) {
	if !ValidStatus(a.Status) {
		return nil, fmt.Errorf("invalid application status: %q", a.Status)
	}

	var saved Application
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_applications (user_id, posting_id, job_title, company, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, posting_id, job_title, company, status, notes, applied_at, updated_at`,
		a.UserID, a.PostingID, a.JobTitle, a.Company, a.Status, a.Notes,
	).Scan(&saved.ID, &saved.UserID, &saved.PostingID, &saved.JobTitle, &saved.Company,
		&saved.Status, &saved.Notes, &saved.AppliedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &saved, nil
}

// GetApplication retrieves one application, or nil if none exists
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, posting_id, job_title, company, status, notes, applied_at, updated_at
		 FROM job_applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.PostingID, &a.JobTitle, &a.Company,
		&a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// ListApplications returns a user's applications, most recent first
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, posting_id, job_title, company, status, notes, applied_at, updated_at
		 FROM job_applications WHERE user_id = $1
		 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.PostingID, &a.JobTitle, &a.Company,
			&a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a new status
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status, notes string) (*Application, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid application status: %q", status)
	}

	var a Application
	err := db.pool.QueryRow(ctx,
		`UPDATE job_applications SET status = $1, notes = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, user_id, posting_id, job_title, company, status, notes, applied_at, updated_at`,
		status, notes, id,
	).Scan(&a.ID, &a.UserID, &a.PostingID, &a.JobTitle, &a.Company,
		&a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return &a, nil
}

// DeleteApplication removes an application
func (db *DB) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}
