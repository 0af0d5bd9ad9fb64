package services

import (
	"context"
	"strconv"
	"strings"

	supabaseclient "github.com/azwatch/campfin-backend/internal/client/supabase"
	"github.com/azwatch/campfin-backend/internal/dto"
	"github.com/azwatch/campfin-backend/internal/errs"
	"github.com/azwatch/campfin-backend/internal/models"
	"github.com/azwatch/campfin-backend/pkg/logger"
)

type entityFacade interface {
	Query(ctx context.Context, resource string, opts supabaseclient.QueryOptions, out any) error
	Invoke(ctx context.Context, procedure string, params any, out any) error
}

type entityService struct {
	facade entityFacade
}

func NewEntityService(facade entityFacade) *entityService {
	return &entityService{facade: facade}
}

// GetEntityDetail assembles the entity page bundle. A missing entity is fatal
// (404); a missing primary record or a failed summary procedure degrades to a
// null field so the page stays renderable.
func (s *entityService) GetEntityDetail(ctx context.Context, entityID int64) (*dto.EntityDetailResponse, error) {
	log := logger.FromContext(ctx)

	var entities []models.Entity
	err := s.facade.Query(ctx, "cf_entities", supabaseclient.QueryOptions{
		Select:  "*",
		Filters: map[string]string{"entity_id": strconv.FormatInt(entityID, 10)},
		Limit:   1,
	}, &entities)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, errs.NewNotFoundError("Entity not found")
	}
	entity := entities[0]

	resp := &dto.EntityDetailResponse{
		Entity:  &entity,
		Reports: []models.Report{},
	}

	if entity.PrimaryRecordID != nil {
		var records []models.EntityRecord
		err := s.facade.Query(ctx, "cf_entity_records", supabaseclient.QueryOptions{
			Select:  "*",
			Filters: map[string]string{"record_id": strconv.FormatInt(*entity.PrimaryRecordID, 10)},
			Limit:   1,
		}, &records)
		if err != nil {
			log.Warn("primary record fetch failed", "record_id", *entity.PrimaryRecordID, "error", err)
		} else if len(records) > 0 {
			resp.PrimaryRecord = &records[0]
		}
	}

	var summaries []models.FinancialSummary
	err = s.facade.Invoke(ctx, "get_entity_financial_summary", map[string]any{
		"p_entity_id": entityID,
	}, &summaries)
	if err != nil {
		log.Warn("financial summary procedure failed, recomputing locally", "error", err)
		resp.FinancialSummary = s.fallbackSummary(ctx, entityID)
	} else if len(summaries) > 0 {
		resp.FinancialSummary = &summaries[0]
	}

	var stats []models.SummaryStats
	err = s.facade.Invoke(ctx, "get_entity_summary_stats", map[string]any{
		"p_entity_id": entityID,
	}, &stats)
	if err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		resp.SummaryStats = &stats[0]
	}

	var reports []models.Report
	err = s.facade.Invoke(ctx, "get_entity_reports_detailed", map[string]any{
		"p_entity_id": entityID,
	}, &reports)
	if err != nil {
		return nil, err
	}
	if reports != nil {
		resp.Reports = reports
	}

	return resp, nil
}

// fallbackTransaction is the minimal projection the fallback summary pulls
// from cf_transactions. Amount is tolerant of string, number and garbage
// renderings; garbage counts as zero but the row is still tallied.
type fallbackTransaction struct {
	Amount          flexAmount `json:"amount"`
	DispositionID   *int       `json:"transaction_type_disposition_id"`
	TransactionDate *string    `json:"transaction_date"`
}

type flexAmount float64

func (a *flexAmount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = flexAmount(f)
	return nil
}

// fallbackSummary folds raw transaction rows into an approximate financial
// summary when the upstream procedure is unavailable. Best effort: any
// failure here degrades to a null summary rather than aborting the bundle.
func (s *entityService) fallbackSummary(ctx context.Context, entityID int64) *models.FinancialSummary {
	log := logger.FromContext(ctx)

	var txs []fallbackTransaction
	err := s.facade.Query(ctx, "cf_transactions", supabaseclient.QueryOptions{
		Select:  "amount,transaction_type_disposition_id,transaction_date",
		Filters: map[string]string{"entity_id": strconv.FormatInt(entityID, 10)},
	}, &txs)
	if err != nil {
		log.Warn("fallback summary fetch failed", "error", err)
		return nil
	}
	if len(txs) == 0 {
		return nil
	}

	summary := &models.FinancialSummary{TransactionCount: len(txs)}
	for _, tx := range txs {
		if tx.DispositionID != nil {
			switch *tx.DispositionID {
			case models.DispositionIncome:
				summary.TotalRaised += float64(tx.Amount)
				summary.DonationCount++
			case models.DispositionExpense:
				summary.TotalSpent += float64(tx.Amount)
				summary.ExpenseCount++
			}
		}

		if tx.TransactionDate == nil {
			continue
		}
		d := *tx.TransactionDate
		if summary.EarliestTransaction == nil || d < *summary.EarliestTransaction {
			summary.EarliestTransaction = &d
		}
		if summary.LatestTransaction == nil || d > *summary.LatestTransaction {
			summary.LatestTransaction = &d
		}
	}

	return summary
}

// ListReports returns the detailed report list on its own, for the reports
// tab refresh path.
func (s *entityService) ListReports(ctx context.Context, entityID int64) ([]models.Report, error) {
	var reports []models.Report
	err := s.facade.Invoke(ctx, "get_entity_reports_detailed", map[string]any{
		"p_entity_id": entityID,
	}, &reports)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return reports, nil
}

// ListTransactions returns one page of transactions, newest first. Every row
// carries the denormalized total_count.
func (s *entityService) ListTransactions(ctx context.Context, entityID int64, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.facade.Invoke(ctx, "get_entity_transactions", map[string]any{
		"p_entity_id": entityID,
		"p_limit":     limit,
		"p_offset":    offset,
	}, &txs)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// ListReportDonations returns every donation on a single report, for the
// per-report download link on the reports table.
func (s *entityService) ListReportDonations(ctx context.Context, entityID, reportID int64) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.facade.Invoke(ctx, "get_report_donations", map[string]any{
		"p_entity_id": entityID,
		"p_report_id": reportID,
	}, &donations)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []models.Donation{}
	}
	return donations, nil
}

// ListDonations returns one page of donations grouped by report.
func (s *entityService) ListDonations(ctx context.Context, entityID int64, limit, offset int) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.facade.Invoke(ctx, "get_entity_donations_by_report", map[string]any{
		"p_entity_id": entityID,
		"p_limit":     limit,
		"p_offset":    offset,
	}, &donations)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []models.Donation{}
	}
	return donations, nil
}
