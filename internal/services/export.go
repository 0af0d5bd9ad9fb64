package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	bulkexportclient "github.com/azwatch/campfin-backend/internal/client/bulkexport"
	supabaseclient "github.com/azwatch/campfin-backend/internal/client/supabase"
	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/pkg/csvenc"
)

type exportFacade interface {
	Invoke(ctx context.Context, procedure string, params any, out any) error
	QueryCSV(ctx context.Context, resource string, opts supabaseclient.QueryOptions) ([]byte, error)
}

type exportWorker interface {
	Export(ctx context.Context, body []byte) (*bulkexportclient.Relay, error)
}

type exportService struct {
	facade       exportFacade
	worker       exportWorker
	maxEntityIDs int
	now          func() time.Time
}

func NewExportService(facade exportFacade, worker exportWorker, maxEntityIDs int) *exportService {
	return &exportService{
		facade:       facade,
		worker:       worker,
		maxEntityIDs: maxEntityIDs,
		now:          time.Now,
	}
}

// Fixed column sets for locally rendered CSV, one per dataset. Order is part
// of the file contract.
var (
	transactionColumns = []csvenc.Column{
		{Key: "transaction_id", Label: "Transaction ID"},
		{Key: "record_id", Label: "Record ID"},
		{Key: "entity_id", Label: "Entity ID"},
		{Key: "transaction_date", Label: "Date"},
		{Key: "amount", Label: "Amount"},
		{Key: "transaction_type", Label: "Type"},
		{Key: "contributor_name", Label: "Contributor Name"},
		{Key: "vendor_name", Label: "Vendor Name"},
		{Key: "occupation", Label: "Occupation"},
		{Key: "employer", Label: "Employer"},
		{Key: "address_line_1", Label: "Address Line 1"},
		{Key: "address_line_2", Label: "Address Line 2"},
		{Key: "city", Label: "City"},
		{Key: "state", Label: "State"},
		{Key: "zip_code", Label: "Zip Code"},
		{Key: "country", Label: "Country"},
		{Key: "memo", Label: "Memo"},
		{Key: "in_kind_description", Label: "In-Kind Description"},
		{Key: "loan_amount", Label: "Loan Amount"},
		{Key: "check_number", Label: "Check Number"},
	}

	reportColumns = []csvenc.Column{
		{Key: "report_id", Label: "Report ID"},
		{Key: "record_id", Label: "Record ID"},
		{Key: "entity_id", Label: "Entity ID"},
		{Key: "report_name", Label: "Report Name"},
		{Key: "filing_date", Label: "Filing Date"},
		{Key: "report_period", Label: "Period"},
		{Key: "start_date", Label: "Start Date"},
		{Key: "end_date", Label: "End Date"},
		{Key: "total_donations", Label: "Total Donations"},
		{Key: "donation_count", Label: "Donation Count"},
		{Key: "cash_on_hand_beginning", Label: "Cash on Hand (Beginning)"},
		{Key: "cash_on_hand_end", Label: "Cash on Hand (End)"},
		{Key: "pdf_url", Label: "PDF URL"},
	}

	// reportDonationColumns is the narrower per-report set; the report and
	// filing metadata would repeat on every row.
	reportDonationColumns = []csvenc.Column{
		{Key: "donation_id", Label: "Donation ID"},
		{Key: "donation_date", Label: "Date"},
		{Key: "amount", Label: "Amount"},
		{Key: "donor_name", Label: "Donor"},
		{Key: "donor_first_name", Label: "First Name"},
		{Key: "donor_last_name", Label: "Last Name"},
		{Key: "donor_organization", Label: "Organization"},
		{Key: "donor_type", Label: "Type"},
		{Key: "occupation", Label: "Occupation"},
		{Key: "employer", Label: "Employer"},
		{Key: "address", Label: "Address"},
		{Key: "city", Label: "City"},
		{Key: "state", Label: "State"},
		{Key: "zip", Label: "Zip"},
		{Key: "country", Label: "Country"},
		{Key: "is_individual", Label: "Is Individual"},
	}

	donationColumns = []csvenc.Column{
		{Key: "donation_id", Label: "Donation ID"},
		{Key: "report_id", Label: "Report ID"},
		{Key: "entity_id", Label: "Entity ID"},
		{Key: "report_name", Label: "Report"},
		{Key: "filing_date", Label: "Filing Date"},
		{Key: "donation_date", Label: "Date"},
		{Key: "amount", Label: "Amount"},
		{Key: "donor_name", Label: "Donor"},
		{Key: "donor_first_name", Label: "First Name"},
		{Key: "donor_last_name", Label: "Last Name"},
		{Key: "donor_organization", Label: "Organization"},
		{Key: "donor_type", Label: "Type"},
		{Key: "occupation", Label: "Occupation"},
		{Key: "employer", Label: "Employer"},
		{Key: "address", Label: "Address"},
		{Key: "city", Label: "City"},
		{Key: "state", Label: "State"},
		{Key: "zip", Label: "Zip"},
		{Key: "country", Label: "Country"},
		{Key: "is_individual", Label: "Is Individual"},
	}
)

var csvProcedures = map[dto.ExportKind]string{
	dto.ExportKindReports:      "get_entity_reports_csv",
	dto.ExportKindTransactions: "get_entity_transactions_csv",
	dto.ExportKindDonations:    "get_entity_donations_csv",
}

var csvColumns = map[dto.ExportKind][]csvenc.Column{
	dto.ExportKindReports:      reportColumns,
	dto.ExportKindTransactions: transactionColumns,
	dto.ExportKindDonations:    donationColumns,
}

// DatasetCSV renders one entity's full dataset of the given kind as CSV text
// from the CSV-shaped procedure rows, using the fixed column set.
func (s *exportService) DatasetCSV(ctx context.Context, kind dto.ExportKind, entityID int64) ([]byte, error) {
	procedure, ok := csvProcedures[kind]
	if !ok {
		return nil, errs.NewValidationError(fmt.Sprintf("unsupported export kind: %s", kind))
	}

	var rows []map[string]any
	err := s.facade.Invoke(ctx, procedure, map[string]any{"p_entity_id": entityID}, &rows)
	if err != nil {
		return nil, err
	}
	return csvenc.Encode(rows, csvColumns[kind]), nil
}

// ReportDonationsCSV renders the donations of a single report with the
// narrower per-report column set.
func (s *exportService) ReportDonationsCSV(ctx context.Context, entityID, reportID int64) ([]byte, error) {
	var rows []map[string]any
	err := s.facade.Invoke(ctx, "get_report_donations", map[string]any{
		"p_entity_id": entityID,
		"p_report_id": reportID,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return csvenc.Encode(rows, reportDonationColumns), nil
}

// DownloadCSV streams the facade's own CSV rendering of a pre-shaped export
// view, byte-exact, with the attachment filename for the browser. No row
// limit is applied.
func (s *exportService) DownloadCSV(ctx context.Context, kind dto.ExportKind, entityID int64) (body []byte, filename string, err error) {
	var view, order string
	switch kind {
	case dto.ExportKindReports:
		view, order = "vw_reports_export", "rpt_file_date.desc"
	case dto.ExportKindTransactions:
		view, order = "vw_transactions_export", "transaction_date.desc"
	default:
		return nil, "", errs.NewValidationError(fmt.Sprintf("unsupported download kind: %s", kind))
	}

	body, err = s.facade.QueryCSV(ctx, view, supabaseclient.QueryOptions{
		Select:  "*",
		Filters: map[string]string{"entity_id": strconv.FormatInt(entityID, 10)},
		Order:   order,
	})
	if err != nil {
		return nil, "", err
	}

	filename = fmt.Sprintf("entity_%d_%s_%s.csv", entityID, kind, s.now().Format("2006-01-02"))
	return body, filename, nil
}

// BulkExport validates a multi-entity export request and forwards it to the
// external export worker. Every validation failure happens before any
// upstream call; the worker's status and body come back verbatim.
func (s *exportService) BulkExport(ctx context.Context, req dto.BulkExportRequest) (*dto.ExportRelay, error) {
	if err := s.validateBulkRequest(req); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	relay, err := s.worker.Export(ctx, body)
	if err != nil {
		return nil, err
	}
	return &dto.ExportRelay{Status: relay.Status, Body: relay.Body}, nil
}

func (s *exportService) validateBulkRequest(req dto.BulkExportRequest) error {
	if req.Kind != dto.ExportKindReports && req.Kind != dto.ExportKindTransactions {
		return errs.NewValidationError("Invalid request: kind must be one of: reports, transactions")
	}
	if len(req.EntityIDs) == 0 {
		return errs.NewValidationError("At least one entity ID is required")
	}
	if len(req.EntityIDs) > s.maxEntityIDs {
		return errs.NewValidationError(fmt.Sprintf("Too many entity IDs. Maximum allowed: %d", s.maxEntityIDs))
	}

	var invalid []string
	for _, id := range req.EntityIDs {
		n, err := id.Int64()
		if err != nil || n <= 0 {
			invalid = append(invalid, id.String())
		}
	}
	if len(invalid) > 0 {
		return errs.NewValidationError(fmt.Sprintf("Invalid entity IDs: %s", strings.Join(invalid, ", ")))
	}
	return nil
}
