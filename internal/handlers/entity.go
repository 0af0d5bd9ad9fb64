package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/internal/models"
	"github.com/azwatch/campfin-backend/internal/response"
	"github.com/azwatch/campfin-backend/pkg/paging"
)

type entityService interface {
	GetEntityDetail(ctx context.Context, entityID int64) (*dto.EntityDetailResponse, error)
	ListReports(ctx context.Context, entityID int64) ([]models.Report, error)
	ListTransactions(ctx context.Context, entityID int64, limit, offset int) ([]models.Transaction, error)
	ListDonations(ctx context.Context, entityID int64, limit, offset int) ([]models.Donation, error)
	ListReportDonations(ctx context.Context, entityID, reportID int64) ([]models.Donation, error)
}

type entityExportService interface {
	DatasetCSV(ctx context.Context, kind dto.ExportKind, entityID int64) ([]byte, error)
	ReportDonationsCSV(ctx context.Context, entityID, reportID int64) ([]byte, error)
}

type entityHandlers struct {
	ResponseHandler response.ResponseHandler
	EntitySvc       entityService
	ExportSvc       entityExportService
	DefaultPageSize int
}

func NewEntityHandlers(deps *Deps) *entityHandlers {
	return &entityHandlers{
		ResponseHandler: deps.ResponseHandler,
		EntitySvc:       deps.EntitySvc,
		ExportSvc:       deps.ExportSvc,
		DefaultPageSize: deps.DefaultPageSize,
	}
}

func (h *entityHandlers) EntityRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.GetEntity)
	r.Get("/{id}/reports", h.GetReports)
	r.Get("/{id}/reports/{reportID}/donations", h.GetReportDonations)
	r.Get("/{id}/transactions", h.GetTransactions)
	r.Get("/{id}/donations", h.GetDonations)
	return r
}

func (h *entityHandlers) GetEntity(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	detail, err := h.EntitySvc.GetEntityDetail(r.Context(), entityID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}

func (h *entityHandlers) GetReports(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		h.writeDatasetCSV(w, r, dto.ExportKindReports, entityID)
		return
	}

	reports, err := h.EntitySvc.ListReports(r.Context(), entityID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, reports)
}

func (h *entityHandlers) GetReportDonations(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	reportID, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil || reportID <= 0 {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Invalid report ID provided."))
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		body, err := h.ExportSvc.ReportDonationsCSV(r.Context(), entityID, reportID)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
		filename := "report_" + strconv.FormatInt(reportID, 10) + "_donations.csv"
		h.ResponseHandler.WriteCSV(w, r, filename, body)
		return
	}

	donations, err := h.EntitySvc.ListReportDonations(r.Context(), entityID, reportID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, donations)
}

func (h *entityHandlers) GetTransactions(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		h.writeDatasetCSV(w, r, dto.ExportKindTransactions, entityID)
		return
	}

	limit, offset := h.pageParams(r)
	txs, err := h.EntitySvc.ListTransactions(r.Context(), entityID, limit, offset)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	total := 0
	if len(txs) > 0 {
		total = txs[0].TotalCount
	}
	writePageHeaders(w, total, paging.HasMore(offset+len(txs), total))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *entityHandlers) GetDonations(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		h.writeDatasetCSV(w, r, dto.ExportKindDonations, entityID)
		return
	}

	limit, offset := h.pageParams(r)
	donations, err := h.EntitySvc.ListDonations(r.Context(), entityID, limit, offset)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	total := 0
	if len(donations) > 0 {
		total = donations[0].TotalCount
	}
	writePageHeaders(w, total, paging.HasMore(offset+len(donations), total))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, donations)
}

// ---- Helpers ----

func (h *entityHandlers) writeDatasetCSV(w http.ResponseWriter, r *http.Request, kind dto.ExportKind, entityID int64) {
	body, err := h.ExportSvc.DatasetCSV(r.Context(), kind, entityID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	filename := string(kind) + "_" + strconv.FormatInt(entityID, 10) + ".csv"
	h.ResponseHandler.WriteCSV(w, r, filename, body)
}

func (h *entityHandlers) pageParams(r *http.Request) (limit, offset int) {
	limit = h.DefaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func writePageHeaders(w http.ResponseWriter, total int, hasMore bool) {
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	w.Header().Set("X-Has-More", strconv.FormatBool(hasMore))
}

// entityIDParam parses the {id} path parameter. Anything but a positive
// integer fails before any upstream call.
func entityIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidEntityIDError()
	}
	return id, nil
}
