package recordings

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/auralog/backend/internal/middleware"
	"github.com/auralog/backend/internal/models"
	"github.com/auralog/backend/pkg/response"
)

// Store is the owner-filtered persistence API for recordings. Every method
// takes the owning user as a required parameter, so no query can be issued
// without the ownership predicate applied.
type Store interface {
	List(ctx context.Context, owner uuid.UUID) ([]models.Recording, error)
	Get(ctx context.Context, owner uuid.UUID, id int64) (*models.Recording, error)
	Create(ctx context.Context, owner uuid.UUID, in *Input) (*models.Recording, error)
	Update(ctx context.Context, owner uuid.UUID, id int64, in *Input) (*models.Recording, error)
	Delete(ctx context.Context, owner uuid.UUID, id int64) error
}

// Handler handles recording HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a recordings handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(middleware.ContextUserID).(uuid.UUID)
}

// recordingID parses the :id path parameter. An unparsable id is treated the
// same as a missing recording so the error surface stays a single 404.
func recordingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "recording not found")
		return 0, false
	}
	return id, true
}

// List handles GET /recordings.
func (h *Handler) List(c *gin.Context) {
	owner := currentUser(c)
	recs, err := h.store.List(c.Request.Context(), owner)
	if err != nil {
		h.logger.Error("list recordings failed", zap.Error(err), zap.String("user_id", owner.String()))
		response.Internal(c, "failed to list recordings")
		return
	}
	response.OK(c, NewViews(recs))
}

// Create handles POST /recordings.
func (h *Handler) Create(c *gin.Context) {
	owner := currentUser(c)
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if fields := in.Validate(false); fields != nil {
		response.FieldErrors(c, fields)
		return
	}
	rec, err := h.store.Create(c.Request.Context(), owner, &in)
	if err != nil {
		h.logger.Error("create recording failed", zap.Error(err), zap.String("user_id", owner.String()))
		response.Internal(c, "failed to create recording")
		return
	}
	response.Created(c, NewView(rec))
}

// Get handles GET /recordings/:id.
func (h *Handler) Get(c *gin.Context) {
	owner := currentUser(c)
	id, ok := recordingID(c)
	if !ok {
		return
	}
	rec, err := h.store.Get(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "recording not found")
			return
		}
		h.logger.Error("get recording failed", zap.Error(err), zap.Int64("recording_id", id))
		response.Internal(c, "failed to get recording")
		return
	}
	response.OK(c, NewDetailView(rec))
}

// Update handles PUT /recordings/:id. All writable fields are required.
func (h *Handler) Update(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdate handles PATCH /recordings/:id. Only supplied fields change.
func (h *Handler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *Handler) update(c *gin.Context, partial bool) {
	owner := currentUser(c)
	id, ok := recordingID(c)
	if !ok {
		return
	}
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if fields := in.Validate(partial); fields != nil {
		response.FieldErrors(c, fields)
		return
	}
	rec, err := h.store.Update(c.Request.Context(), owner, id, &in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "recording not found")
			return
		}
		h.logger.Error("update recording failed", zap.Error(err), zap.Int64("recording_id", id))
		response.Internal(c, "failed to update recording")
		return
	}
	response.OK(c, NewView(rec))
}

// Delete handles DELETE /recordings/:id.
func (h *Handler) Delete(c *gin.Context) {
	owner := currentUser(c)
	id, ok := recordingID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "recording not found")
			return
		}
		h.logger.Error("delete recording failed", zap.Error(err), zap.Int64("recording_id", id))
		response.Internal(c, "failed to delete recording")
		return
	}
	response.NoContent(c)
}
