package recordings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/auralog/backend/internal/models"
)

// ErrNotFound is returned when no recording matches the given owner and id.
// A recording owned by another user is indistinguishable from a missing one.
var ErrNotFound = errors.New("recording not found")

// Repository handles recording persistence in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a recordings repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordingColumns = `id, user_id, title, duration_minutes, date_of_recording, category, current_status, recording_url, transcription_url, created_at, updated_at`

func scanRecording(row pgx.Row) (*models.Recording, error) {
	var rec models.Recording
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.DurationMinutes, &rec.DateOfRecording,
		&rec.Category, &rec.CurrentStatus, &rec.RecordingURL, &rec.TranscriptionURL, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all recordings owned by owner, newest first.
func (r *Repository) List(ctx context.Context, owner uuid.UUID) ([]models.Recording, error) {
	const q = `SELECT ` + recordingColumns + ` FROM recordings WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Recording
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *rec)
	}
	return list, rows.Err()
}

// Get returns the recording with id owned by owner. Ownership is part of the
// query predicate, so foreign and missing rows both surface as ErrNotFound.
func (r *Repository) Get(ctx context.Context, owner uuid.UUID, id int64) (*models.Recording, error) {
	const q = `SELECT ` + recordingColumns + ` FROM recordings WHERE id = $1 AND user_id = $2`
	rec, err := scanRecording(r.pool.QueryRow(ctx, q, id, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Create inserts a new recording owned by owner. The input must have passed
// strict validation, so every field pointer is set.
func (r *Repository) Create(ctx context.Context, owner uuid.UUID, in *Input) (*models.Recording, error) {
	const q = `INSERT INTO recordings (user_id, title, duration_minutes, date_of_recording, category, current_status, recording_url, transcription_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + recordingColumns
	return scanRecording(r.pool.QueryRow(ctx, q, owner,
		in.Title, in.DurationMinutes, in.Date(), in.Category, in.CurrentStatus, in.RecordingURL, in.TranscriptionURL))
}

// Update applies the supplied fields to the recording with id owned by owner.
// Nil fields keep their stored values, so partial and full updates go through
// the same statement; the difference is decided at validation time.
func (r *Repository) Update(ctx context.Context, owner uuid.UUID, id int64, in *Input) (*models.Recording, error) {
	const q = `UPDATE recordings SET
		title = COALESCE($3, title),
		duration_minutes = COALESCE($4, duration_minutes),
		date_of_recording = COALESCE($5, date_of_recording),
		category = COALESCE($6, category),
		current_status = COALESCE($7, current_status),
		recording_url = COALESCE($8, recording_url),
		transcription_url = COALESCE($9, transcription_url),
		updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + recordingColumns
	rec, err := scanRecording(r.pool.QueryRow(ctx, q, id, owner,
		in.Title, in.DurationMinutes, in.Date(), in.Category, in.CurrentStatus, in.RecordingURL, in.TranscriptionURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Delete permanently removes the recording with id owned by owner.
func (r *Repository) Delete(ctx context.Context, owner uuid.UUID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recordings WHERE id = $1 AND user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
