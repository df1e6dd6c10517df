package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/application/services"
	"github.com/jn0w/Lindsey/pkg/common"
	pkgerrors "github.com/jn0w/Lindsey/pkg/errors"
	"github.com/jn0w/Lindsey/pkg/utils"
)

// MemoryHandler handles memory-related HTTP requests
type MemoryHandler struct {
	service *services.MemoryService
	logger  *zap.Logger
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(service *services.MemoryService, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{
		service: service,
		logger:  logger,
	}
}

// MemoryRequest represents the request body for creating or replacing a
// memory. An id field in the body is ignored; the path identifies the
// record.
type MemoryRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Date        string   `json:"date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (r MemoryRequest) toInput() services.MemoryInput {
	return services.MemoryInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Date:        r.Date,
		Tags:        r.Tags,
	}
}

// ListMemories handles GET /memories
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch memories", zap.Error(err))
		common.RespondAppError(w, err, "Failed to fetch memories")
		return
	}

	common.RespondJSON(w, http.StatusOK, memories)
}

// CreateMemory handles POST /memories
func (h *MemoryHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Title, description, and image are required")
		return
	}

	created, err := h.service.Create(r.Context(), req.toInput())
	if err != nil {
		h.logger.Error("Failed to create memory", zap.Error(err))
		common.RespondAppError(w, err, "Failed to create memory")
		return
	}

	common.RespondMessage(w, http.StatusCreated, "Memory created successfully", created)
}

// GetMemory handles GET /memories/{id}
func (h *MemoryHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoryID(w, r)
	if !ok {
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to fetch memory", zap.String("memoryID", id), zap.Error(err))
		}
		common.RespondAppError(w, err, "Failed to fetch memory")
		return
	}

	common.RespondJSON(w, http.StatusOK, found)
}

// UpdateMemory handles PUT /memories/{id}
func (h *MemoryHandler) UpdateMemory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoryID(w, r)
	if !ok {
		return
	}

	var req MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Title, description, and image are required")
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toInput())
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to update memory", zap.String("memoryID", id), zap.Error(err))
		}
		common.RespondAppError(w, err, "Failed to update memory")
		return
	}

	common.RespondMessage(w, http.StatusOK, "Memory updated successfully", updated)
}

// DeleteMemory handles DELETE /memories/{id}
func (h *MemoryHandler) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memoryID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to delete memory", zap.String("memoryID", id), zap.Error(err))
		}
		common.RespondAppError(w, err, "Failed to delete memory")
		return
	}

	common.RespondMessage(w, http.StatusOK, "Memory deleted successfully", nil)
}

// memoryOfTheDayResponse keeps the historical shape of the daily pick
// endpoint: no envelope, null memory for an empty collection.
type memoryOfTheDayResponse struct {
	MemoryOfTheDay interface{} `json:"memoryOfTheDay"`
	Date           string      `json:"date,omitempty"`
}

// MemoryOfTheDay handles GET /memory-of-the-day
func (h *MemoryHandler) MemoryOfTheDay(w http.ResponseWriter, r *http.Request) {
	picked, dateKey, err := h.service.MemoryOfTheDay(r.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to fetch memory of the day", zap.Error(err))
		common.RespondAppError(w, err, "Failed to fetch memory of the day")
		return
	}

	if picked == nil {
		common.RespondRaw(w, http.StatusOK, memoryOfTheDayResponse{MemoryOfTheDay: nil})
		return
	}

	common.RespondRaw(w, http.StatusOK, memoryOfTheDayResponse{
		MemoryOfTheDay: picked,
		Date:           dateKey,
	})
}

// memoryID extracts and validates the identifier path parameter.
// Malformed identifiers fail here, before the store is involved.
func (h *MemoryHandler) memoryID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid memory ID format")
		return "", false
	}
	return id, true
}
