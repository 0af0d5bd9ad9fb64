package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/models"
)

// stubResponseHandler records which write path ran and with what.
type stubResponseHandler struct {
	writeSuccessCalled bool
	successStatus      int
	successData        any

	handleErrorCalled bool
	handledErr        error

	errorWriteCalled bool
	errorStatus      int
	errorCode        string
	errorMessage     string
	errorDetails     string

	csvWriteCalled bool
	csvFilename    string
	csvBody        []byte

	rawWriteCalled bool
	rawStatus      int
	rawContentType string
	rawBody        []byte
}

func (s *stubResponseHandler) WriteSuccess(_ http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.successStatus = status
	s.successData = data
}

func (s *stubResponseHandler) WriteError(_ http.ResponseWriter, _ *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorStatus = status
	s.errorCode = code
	s.errorMessage = message
}

func (s *stubResponseHandler) WriteErrorDetails(_ http.ResponseWriter, _ *http.Request, status int, code, message, details string) {
	s.errorWriteCalled = true
	s.errorStatus = status
	s.errorCode = code
	s.errorMessage = message
	s.errorDetails = details
}

func (s *stubResponseHandler) HandleError(_ http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handledErr = err
}

func (s *stubResponseHandler) WriteCSV(_ http.ResponseWriter, _ *http.Request, filename string, body []byte) {
	s.csvWriteCalled = true
	s.csvFilename = filename
	s.csvBody = body
}

func (s *stubResponseHandler) WriteRaw(_ http.ResponseWriter, _ *http.Request, status int, contentType string, body []byte) {
	s.rawWriteCalled = true
	s.rawStatus = status
	s.rawContentType = contentType
	s.rawBody = body
}

// stubEntityService returns canned values and records call arguments.
type stubEntityService struct {
	detail    *dto.EntityDetailResponse
	detailErr error

	reports    []models.Report
	reportsErr error

	transactions    []models.Transaction
	transactionsErr error

	donations    []models.Donation
	donationsErr error

	reportDonations    []models.Donation
	reportDonationsErr error

	calls        int
	lastID       int64
	lastReportID int64
	lastLimit    int
	lastOffset   int
}

func (s *stubEntityService) GetEntityDetail(_ context.Context, entityID int64) (*dto.EntityDetailResponse, error) {
	s.calls++
	s.lastID = entityID
	return s.detail, s.detailErr
}

func (s *stubEntityService) ListReports(_ context.Context, entityID int64) ([]models.Report, error) {
	s.calls++
	s.lastID = entityID
	return s.reports, s.reportsErr
}

func (s *stubEntityService) ListTransactions(_ context.Context, entityID int64, limit, offset int) ([]models.Transaction, error) {
	s.calls++
	s.lastID = entityID
	s.lastLimit = limit
	s.lastOffset = offset
	return s.transactions, s.transactionsErr
}

func (s *stubEntityService) ListDonations(_ context.Context, entityID int64, limit, offset int) ([]models.Donation, error) {
	s.calls++
	s.lastID = entityID
	s.lastLimit = limit
	s.lastOffset = offset
	return s.donations, s.donationsErr
}

func (s *stubEntityService) ListReportDonations(_ context.Context, entityID, reportID int64) ([]models.Donation, error) {
	s.calls++
	s.lastID = entityID
	s.lastReportID = reportID
	return s.reportDonations, s.reportDonationsErr
}

type stubSearchService struct {
	results    []models.SearchResult
	calls      int
	lastQuery  string
	lastLimit  int
	lastOffset int
}

func (s *stubSearchService) Search(_ context.Context, q string, limit, offset int) []models.SearchResult {
	s.calls++
	s.lastQuery = q
	s.lastLimit = limit
	s.lastOffset = offset
	return s.results
}

type stubExportService struct {
	csvBody []byte
	csvErr  error

	reportCSVBody []byte
	reportCSVErr  error

	downloadBody     []byte
	downloadFilename string
	downloadErr      error

	relay    *dto.ExportRelay
	relayErr error

	calls        int
	lastKind     dto.ExportKind
	lastID       int64
	lastReportID int64
	lastReq      dto.BulkExportRequest
}

func (s *stubExportService) DatasetCSV(_ context.Context, kind dto.ExportKind, entityID int64) ([]byte, error) {
	s.calls++
	s.lastKind = kind
	s.lastID = entityID
	return s.csvBody, s.csvErr
}

func (s *stubExportService) ReportDonationsCSV(_ context.Context, entityID, reportID int64) ([]byte, error) {
	s.calls++
	s.lastID = entityID
	s.lastReportID = reportID
	return s.reportCSVBody, s.reportCSVErr
}

func (s *stubExportService) DownloadCSV(_ context.Context, kind dto.ExportKind, entityID int64) ([]byte, string, error) {
	s.calls++
	s.lastKind = kind
	s.lastID = entityID
	return s.downloadBody, s.downloadFilename, s.downloadErr
}

func (s *stubExportService) BulkExport(_ context.Context, req dto.BulkExportRequest) (*dto.ExportRelay, error) {
	s.calls++
	s.lastReq = req
	return s.relay, s.relayErr
}

// withChiParam injects route parameters (key/value pairs) the way chi's mux
// would.
func withChiParam(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
