package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/internal/models"
)

func newEntityHandlers(entitySvc *stubEntityService, exportSvc *stubExportService) (*entityHandlers, *stubResponseHandler) {
	rh := &stubResponseHandler{}
	h := NewEntityHandlers(&Deps{
		ResponseHandler: rh,
		EntitySvc:       entitySvc,
		ExportSvc:       exportSvc,
		DefaultPageSize: 50,
	})
	return h, rh
}

func TestGetEntity_Success(t *testing.T) {
	svc := &stubEntityService{detail: &dto.EntityDetailResponse{
		Entity: &models.Entity{EntityID: 101502},
	}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/101502", nil), "id", "101502")
	h.GetEntity(newRecorder(), r)

	if !rh.writeSuccessCalled || rh.successStatus != 200 {
		t.Fatalf("expected 200 success, got %+v", rh)
	}
	if svc.lastID != 101502 {
		t.Errorf("service called with id %d", svc.lastID)
	}
}

func TestGetEntity_InvalidID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", "3.5", ""} {
		svc := &stubEntityService{}
		h, rh := newEntityHandlers(svc, &stubExportService{})

		r := withChiParam(httptest.NewRequest("GET", "/"+raw, nil), "id", raw)
		h.GetEntity(newRecorder(), r)

		if !rh.handleErrorCalled {
			t.Fatalf("id %q: expected error path", raw)
		}
		ve, ok := rh.handledErr.(*errs.ValidationError)
		if !ok || ve.Code != "INVALID_ENTITY_ID" {
			t.Errorf("id %q: err = %v", raw, rh.handledErr)
		}
		if svc.calls != 0 {
			t.Errorf("id %q: service must not be called", raw)
		}
	}
}

func TestGetEntity_NotFound(t *testing.T) {
	svc := &stubEntityService{detailErr: errs.NewNotFoundError("Entity not found.")}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/999", nil), "id", "999")
	h.GetEntity(newRecorder(), r)

	if _, ok := rh.handledErr.(*errs.NotFoundError); !ok {
		t.Fatalf("err = %v", rh.handledErr)
	}
}

func TestGetReports_JSON(t *testing.T) {
	svc := &stubEntityService{reports: []models.Report{{ReportID: 1}, {ReportID: 2}}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/7/reports", nil), "id", "7")
	h.GetReports(newRecorder(), r)

	reports, ok := rh.successData.([]models.Report)
	if !ok || len(reports) != 2 {
		t.Fatalf("data = %#v", rh.successData)
	}
}

func TestGetReports_CSVFormat(t *testing.T) {
	export := &stubExportService{csvBody: []byte("Report ID\n1\n")}
	h, rh := newEntityHandlers(&stubEntityService{}, export)

	r := withChiParam(httptest.NewRequest("GET", "/7/reports?format=csv", nil), "id", "7")
	h.GetReports(newRecorder(), r)

	if !rh.csvWriteCalled {
		t.Fatal("expected a CSV response")
	}
	if rh.csvFilename != "reports_7.csv" {
		t.Errorf("filename = %s", rh.csvFilename)
	}
	if export.lastKind != dto.ExportKindReports || export.lastID != 7 {
		t.Errorf("export called with %s/%d", export.lastKind, export.lastID)
	}
}

func TestGetReportDonations_JSON(t *testing.T) {
	svc := &stubEntityService{reportDonations: []models.Donation{{DonationID: 9, ReportID: 42}}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/7/reports/42/donations", nil), "id", "7", "reportID", "42")
	h.GetReportDonations(newRecorder(), r)

	donations, ok := rh.successData.([]models.Donation)
	if !ok || len(donations) != 1 {
		t.Fatalf("data = %#v", rh.successData)
	}
	if svc.lastID != 7 || svc.lastReportID != 42 {
		t.Errorf("service called with %d/%d", svc.lastID, svc.lastReportID)
	}
}

func TestGetReportDonations_CSVFormat(t *testing.T) {
	export := &stubExportService{reportCSVBody: []byte("Donation ID,Date\n9,2024-01-01\n")}
	h, rh := newEntityHandlers(&stubEntityService{}, export)

	r := withChiParam(httptest.NewRequest("GET", "/7/reports/42/donations?format=csv", nil), "id", "7", "reportID", "42")
	h.GetReportDonations(newRecorder(), r)

	if !rh.csvWriteCalled {
		t.Fatal("expected a CSV response")
	}
	if rh.csvFilename != "report_42_donations.csv" {
		t.Errorf("filename = %s", rh.csvFilename)
	}
	if export.lastID != 7 || export.lastReportID != 42 {
		t.Errorf("export called with %d/%d", export.lastID, export.lastReportID)
	}
}

func TestGetReportDonations_InvalidReportID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-2"} {
		svc := &stubEntityService{}
		h, rh := newEntityHandlers(svc, &stubExportService{})

		r := withChiParam(httptest.NewRequest("GET", "/7/reports/"+raw+"/donations", nil), "id", "7", "reportID", raw)
		h.GetReportDonations(newRecorder(), r)

		if _, ok := rh.handledErr.(*errs.ValidationError); !ok {
			t.Errorf("reportID %q: err = %v", raw, rh.handledErr)
		}
		if svc.calls != 0 {
			t.Errorf("reportID %q: service must not be called", raw)
		}
	}
}

func TestGetTransactions_PageHeaders(t *testing.T) {
	svc := &stubEntityService{transactions: []models.Transaction{
		{TransactionID: 1, TotalCount: 120},
		{TransactionID: 2, TotalCount: 120},
	}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	rec := newRecorder()
	r := withChiParam(httptest.NewRequest("GET", "/7/transactions?limit=2&offset=0", nil), "id", "7")
	h.GetTransactions(rec, r)

	if !rh.writeSuccessCalled {
		t.Fatal("expected success")
	}
	if got := rec.Header().Get("X-Total-Count"); got != "120" {
		t.Errorf("X-Total-Count = %q", got)
	}
	if got := rec.Header().Get("X-Has-More"); got != "true" {
		t.Errorf("X-Has-More = %q", got)
	}
	if svc.lastLimit != 2 || svc.lastOffset != 0 {
		t.Errorf("page params = %d/%d", svc.lastLimit, svc.lastOffset)
	}
}

func TestGetTransactions_LastPage(t *testing.T) {
	svc := &stubEntityService{transactions: []models.Transaction{
		{TransactionID: 3, TotalCount: 102},
		{TransactionID: 4, TotalCount: 102},
	}}
	h, _ := newEntityHandlers(svc, &stubExportService{})

	rec := newRecorder()
	r := withChiParam(httptest.NewRequest("GET", "/7/transactions?limit=50&offset=100", nil), "id", "7")
	h.GetTransactions(rec, r)

	if got := rec.Header().Get("X-Has-More"); got != "false" {
		t.Errorf("X-Has-More = %q", got)
	}
}

func TestGetTransactions_DefaultPageSize(t *testing.T) {
	svc := &stubEntityService{}
	h, _ := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/7/transactions", nil), "id", "7")
	h.GetTransactions(newRecorder(), r)

	if svc.lastLimit != 50 {
		t.Errorf("limit = %d", svc.lastLimit)
	}
	if svc.lastOffset != 0 {
		t.Errorf("offset = %d", svc.lastOffset)
	}
}

func TestGetTransactions_EmptyPage(t *testing.T) {
	svc := &stubEntityService{transactions: []models.Transaction{}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	rec := newRecorder()
	r := withChiParam(httptest.NewRequest("GET", "/7/transactions", nil), "id", "7")
	h.GetTransactions(rec, r)

	if !rh.writeSuccessCalled {
		t.Fatal("an empty page is still a 200")
	}
	if got := rec.Header().Get("X-Total-Count"); got != "0" {
		t.Errorf("X-Total-Count = %q", got)
	}
}

func TestGetDonations_PageHeaders(t *testing.T) {
	svc := &stubEntityService{donations: []models.Donation{
		{DonationID: 1, TotalCount: 3},
	}}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	rec := newRecorder()
	r := withChiParam(httptest.NewRequest("GET", "/7/donations?offset=2", nil), "id", "7")
	h.GetDonations(rec, r)

	if !rh.writeSuccessCalled {
		t.Fatal("expected success")
	}
	if got := rec.Header().Get("X-Has-More"); got != "false" {
		t.Errorf("X-Has-More = %q", got)
	}
}

func TestGetDonations_CSVFormat(t *testing.T) {
	export := &stubExportService{csvBody: []byte("Donation ID\n1\n")}
	h, rh := newEntityHandlers(&stubEntityService{}, export)

	r := withChiParam(httptest.NewRequest("GET", "/7/donations?format=csv", nil), "id", "7")
	h.GetDonations(newRecorder(), r)

	if rh.csvFilename != "donations_7.csv" {
		t.Errorf("filename = %s", rh.csvFilename)
	}
	if export.lastKind != dto.ExportKindDonations {
		t.Errorf("kind = %s", export.lastKind)
	}
}

func TestGetTransactions_ServiceError(t *testing.T) {
	svc := &stubEntityService{transactionsErr: errs.NewUpstreamError("facade", 500, "boom")}
	h, rh := newEntityHandlers(svc, &stubExportService{})

	r := withChiParam(httptest.NewRequest("GET", "/7/transactions", nil), "id", "7")
	h.GetTransactions(newRecorder(), r)

	if !rh.handleErrorCalled {
		t.Fatal("expected error path")
	}
	if rh.writeSuccessCalled {
		t.Error("must not write success after an error")
	}
}
