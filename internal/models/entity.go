// Package models holds read-only projections of the external database. This
// service owns no persistent state; every field here is created and mutated
// upstream, and json tags mirror the facade's column names.
package models

// Entity is a tracked candidate or committee, one row per political entity.
type Entity struct {
	EntityID               int64   `json:"entity_id"`
	EntityURL              *string `json:"entity_url"`
	PrimaryCommitteeName   *string `json:"primary_committee_name"`
	PrimaryCandidateName   *string `json:"primary_candidate_name"`
	PrimaryRecordID        *int64  `json:"primary_record_id"`
	TotalRecords           int     `json:"total_records"`
	EarliestActivity       *string `json:"earliest_activity"`
	LatestActivity         *string `json:"latest_activity"`
	TotalIncomeAllRecords  float64 `json:"total_income_all_records"`
	TotalExpenseAllRecords float64 `json:"total_expense_all_records"`
	MaxCashBalance         float64 `json:"max_cash_balance"`
	CreatedAt              string  `json:"created_at"`
	LastUpdated            string  `json:"last_updated"`
}

// EntityRecord is one registration record tied to an entity. An entity may
// have several; at most one carries the primary flag.
type EntityRecord struct {
	RecordID         int64   `json:"record_id"`
	EntityID         int64   `json:"entity_id"`
	EntityName       *string `json:"entity_name"`
	EntityFirstName  *string `json:"entity_first_name"`
	CommitteeName    *string `json:"committee_name"`
	EntityType       *string `json:"entity_type"`
	OfficeName       *string `json:"office_name"`
	OfficeID         *int64  `json:"office_id"`
	OfficeTypeID     *int64  `json:"office_type_id"`
	PartyName        *string `json:"party_name"`
	PartyID          *int64  `json:"party_id"`
	CashBalance      float64 `json:"cash_balance"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	CommitteeStatus  *string `json:"committee_status"`
	RegistrationDate *string `json:"registration_date"`
	TerminationDate  *string `json:"termination_date"`
	IsPrimaryRecord  bool    `json:"is_primary_record"`
}
