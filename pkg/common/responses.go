package common

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/jn0w/Lindsey/pkg/errors"
)

// APIResponse is the JSON envelope shared by every API endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON sends a success response with optional data
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

// RespondMessage sends a success response with a message and optional data
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: message,
	})
}

// RespondAppError maps an error to the taxonomy status and envelope.
// Unknown errors become a generic internal error with the underlying
// message attached for diagnostics.
func RespondAppError(w http.ResponseWriter, err error, fallbackMessage string) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		resp := APIResponse{
			Success: false,
			Message: appErr.Message,
		}
		if appErr.Cause != nil {
			resp.Message = fallbackMessage
			resp.Error = appErr.Cause.Error()
		}
		writeJSON(w, appErr.HTTPStatus, resp)
		return
	}

	writeJSON(w, http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: fallbackMessage,
		Error:   err.Error(),
	})
}

// RespondRaw sends data without the envelope, for endpoints with a fixed
// historical shape.
func RespondRaw(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
