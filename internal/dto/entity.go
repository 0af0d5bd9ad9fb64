package dto

import "github.com/azwatch/campfin-backend/internal/models"

// EntityDetailResponse is the aggregate bundle for the entity detail page.
// PrimaryRecord, FinancialSummary and SummaryStats may be null: their fetch
// steps degrade rather than abort.
type EntityDetailResponse struct {
	Entity           *models.Entity           `json:"entity"`
	PrimaryRecord    *models.EntityRecord     `json:"primaryRecord"`
	FinancialSummary *models.FinancialSummary `json:"financialSummary"`
	SummaryStats     *models.SummaryStats     `json:"summaryStats"`
	Reports          []models.Report          `json:"reports"`
}
