package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.WriteErrorDetails(w, r, status, code, message, "")
}

func (h *responseHandler) WriteErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "code", e.Code, "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, e.Code, e.Message)

	case *errs.UpstreamError:
		// The upstream status and body are for our logs, not the caller.
		log.Error("upstream failure",
			"service", e.Service,
			"status", e.Status,
			"body", e.Body)
		h.WriteErrorDetails(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred. Please try again.", e.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteErrorDetails(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred. Please try again.", err.Error())
	}
}
