package response

import (
	"encoding/json"
	"net/http"

	"github.com/azwatch/campfin-backend/pkg/logger"
)

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode success response", "error", err, "status", status)
	}
}

// WriteCSV streams a CSV body as a browser download. Cache-Control is
// disabled so a repeat download reflects fresh upstream data.
func (h *responseHandler) WriteCSV(w http.ResponseWriter, r *http.Request, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to write csv response", "error", err, "filename", filename)
	}
}

// WriteRaw relays an upstream body byte-for-byte with the given status. Used
// by the bulk-export route, where the export service owns the response shape.
func (h *responseHandler) WriteRaw(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to write raw response", "error", err, "status", status)
	}
}
