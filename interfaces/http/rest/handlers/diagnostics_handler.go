package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/application/ports"
	"github.com/jn0w/Lindsey/pkg/common"
)

// DiagnosticsHandler exposes the store connectivity check
type DiagnosticsHandler struct {
	repo   ports.MemoryRepository
	logger *zap.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(repo ports.MemoryRepository, logger *zap.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{repo: repo, logger: logger}
}

// PingStore handles GET /mongodb
func (h *DiagnosticsHandler) PingStore(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		h.logger.Error("MongoDB connection check failed", zap.Error(err))
		common.RespondAppError(w, err, "Failed to connect to MongoDB")
		return
	}

	common.RespondMessage(w, http.StatusOK, "MongoDB connection successful!", nil)
}
