package recordings

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/auralog/backend/internal/models"
)

// DateFormat is the wire format for date_of_recording.
const DateFormat = "2006-01-02"

var validate = validator.New()

// Input is the set of writable recording fields as received on the wire.
// Pointer fields distinguish absent from zero so the same type serves both
// partial and full updates. id and user have no fields here: payload values
// for either are silently ignored.
type Input struct {
	Title            *string  `json:"title"`
	DurationMinutes  *float64 `json:"duration_minutes"`
	DateOfRecording  *string  `json:"date_of_recording"`
	Category         *string  `json:"category"`
	CurrentStatus    *string  `json:"current_status"`
	RecordingURL     *string  `json:"recording_url"`
	TranscriptionURL *string  `json:"transcription_url"`
}

// Validate checks the input against the field rules. In partial mode only
// supplied fields are checked; otherwise every field is required. Returns a
// map of field name to human-readable reasons, or nil when valid.
func (in *Input) Validate(partial bool) map[string][]string {
	errs := make(map[string][]string)
	addf := func(field, msg string) { errs[field] = append(errs[field], msg) }

	checkText := func(field string, v *string) {
		switch {
		case v == nil:
			if !partial {
				addf(field, "this field is required")
			}
		case strings.TrimSpace(*v) == "":
			addf(field, "must not be blank")
		}
	}
	checkURL := func(field string, v *string) {
		if v == nil {
			if !partial {
				addf(field, "this field is required")
			}
			return
		}
		if err := validate.Var(*v, "required,url"); err != nil {
			addf(field, "must be a valid URL")
			return
		}
		if u, err := url.Parse(*v); err != nil || u.Host == "" {
			addf(field, "must include a host")
		}
	}

	checkText("title", in.Title)
	checkText("category", in.Category)
	checkText("current_status", in.CurrentStatus)

	if in.DurationMinutes == nil {
		if !partial {
			addf("duration_minutes", "this field is required")
		}
	} else if *in.DurationMinutes < 0 {
		addf("duration_minutes", "must be greater than or equal to 0")
	}

	if in.DateOfRecording == nil {
		if !partial {
			addf("date_of_recording", "this field is required")
		}
	} else if _, err := time.Parse(DateFormat, *in.DateOfRecording); err != nil {
		addf("date_of_recording", "must be a valid date in YYYY-MM-DD format")
	}

	checkURL("recording_url", in.RecordingURL)
	checkURL("transcription_url", in.TranscriptionURL)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Date returns the parsed date_of_recording, or nil when absent.
// Call only after Validate has accepted the input.
func (in *Input) Date() *time.Time {
	if in.DateOfRecording == nil {
		return nil
	}
	t, err := time.Parse(DateFormat, *in.DateOfRecording)
	if err != nil {
		return nil
	}
	return &t
}

// View is the wire shape of a recording in list, create and update responses.
// id is output-only.
type View struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	DurationMinutes  float64 `json:"duration_minutes"`
	DateOfRecording  string  `json:"date_of_recording"`
	Category         string  `json:"category"`
	CurrentStatus    string  `json:"current_status"`
	RecordingURL     string  `json:"recording_url"`
	TranscriptionURL string  `json:"transcription_url"`
}

// DetailView is the wire shape for single-recording responses. It carries the
// same fields as View today; the separate name leaves room for the detail
// endpoint to grow fields without touching list responses.
type DetailView = View

// NewView converts a stored recording to its wire shape.
func NewView(rec *models.Recording) View {
	return View{
		ID:               rec.ID,
		Title:            rec.Title,
		DurationMinutes:  rec.DurationMinutes,
		DateOfRecording:  rec.DateOfRecording.Format(DateFormat),
		Category:         rec.Category,
		CurrentStatus:    rec.CurrentStatus,
		RecordingURL:     rec.RecordingURL,
		TranscriptionURL: rec.TranscriptionURL,
	}
}

// NewDetailView converts a stored recording to its detail wire shape.
func NewDetailView(rec *models.Recording) DetailView {
	return NewView(rec)
}

// NewViews converts a list of recordings, preserving order. Returns an empty
// slice (not nil) so an empty list serializes as [].
func NewViews(recs []models.Recording) []View {
	out := make([]View, 0, len(recs))
	for i := range recs {
		out = append(out, NewView(&recs[i]))
	}
	return out
}
