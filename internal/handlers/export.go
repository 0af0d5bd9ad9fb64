package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/internal/response"
)

type exportService interface {
	DatasetCSV(ctx context.Context, kind dto.ExportKind, entityID int64) ([]byte, error)
	ReportDonationsCSV(ctx context.Context, entityID, reportID int64) ([]byte, error)
	DownloadCSV(ctx context.Context, kind dto.ExportKind, entityID int64) (body []byte, filename string, err error)
	BulkExport(ctx context.Context, req dto.BulkExportRequest) (*dto.ExportRelay, error)
}

type exportHandlers struct {
	ResponseHandler response.ResponseHandler
	ExportSvc       exportService
}

func NewExportHandlers(deps *Deps) *exportHandlers {
	return &exportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExportSvc:       deps.ExportSvc,
	}
}

// DownloadCSV streams a full per-entity export straight off the facade
// view, e.g. GET /api/download/entity-reports?id=101502. One handler per
// kind keeps the route list explicit.
func (h *exportHandlers) DownloadCSV(kind dto.ExportKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil || entityID <= 0 {
			h.ResponseHandler.HandleError(w, r, errs.NewInvalidEntityIDError())
			return
		}

		body, filename, err := h.ExportSvc.DownloadCSV(r.Context(), kind, entityID)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
		h.ResponseHandler.WriteCSV(w, r, filename, body)
	}
}

// BulkExport validates the request here, then relays the export
// service's response verbatim, success or not, so callers see the same
// payload shape regardless of which side produced it.
func (h *exportHandlers) BulkExport(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	relay, err := h.ExportSvc.BulkExport(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if relay.Status >= 200 && relay.Status < 300 {
		h.ResponseHandler.WriteRaw(w, r, relay.Status, "application/json", relay.Body)
		return
	}

	var upstream struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	_ = json.Unmarshal(relay.Body, &upstream)
	message := upstream.Error
	if message == "" {
		message = "Export failed. Please try again."
	}
	h.ResponseHandler.WriteErrorDetails(w, r, relay.Status, "export_failed", message, upstream.Details)
}
