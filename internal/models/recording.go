package models

import (
	"time"

	"github.com/google/uuid"
)

// Transcription statuses commonly stored in CurrentStatus. The column is
// free-form text; these are the values the frontend uses.
const (
	StatusNotTranscribed = "Not Transcribed"
	StatusTranscribed    = "Transcribed"
)

// Recording is a piece of recording metadata owned by a single user.
// UserID is set from the authenticated principal at creation and is never
// changed through the API.
type Recording struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"-"`
	Title            string    `json:"title"`
	DurationMinutes  float64   `json:"duration_minutes"`
	DateOfRecording  time.Time `json:"-"`
	Category         string    `json:"category"`
	CurrentStatus    string    `json:"current_status"`
	RecordingURL     string    `json:"recording_url"`
	TranscriptionURL string    `json:"transcription_url"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
