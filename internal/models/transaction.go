package models

// Disposition codes on cf_transactions. Direction is always carried by the
// code, never inferred from the sign or magnitude of the amount.
const (
	DispositionIncome  = 1
	DispositionExpense = 2
)

// Transaction is one financial movement as returned by the paginated
// procedure. TotalCount is denormalized onto every row so the client can
// derive its "has more" state.
type Transaction struct {
	TransactionID     int64   `json:"transaction_id"`
	RecordID          int64   `json:"record_id"`
	EntityID          int64   `json:"entity_id"`
	TransactionDate   *string `json:"transaction_date"`
	Amount            float64 `json:"amount"`
	TransactionType   *string `json:"transaction_type"`
	DispositionID     *int    `json:"transaction_type_disposition_id,omitempty"`
	ContributorName   *string `json:"contributor_name"`
	VendorName        *string `json:"vendor_name"`
	Occupation        *string `json:"occupation"`
	Employer          *string `json:"employer"`
	AddressLine1      *string `json:"address_line_1"`
	AddressLine2      *string `json:"address_line_2"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	ZipCode           *string `json:"zip_code"`
	Country           *string `json:"country"`
	Memo              *string `json:"memo"`
	InKindDescription *string `json:"in_kind_description"`
	LoanAmount        *string `json:"loan_amount"`
	CheckNumber       *string `json:"check_number"`
	TotalCount        int     `json:"total_count"`
}

// FinancialSummary aggregates an entity's transactions. Normally produced by
// the upstream summary procedure; the entity service can recompute an
// equivalent one locally when that procedure fails. Totals are non-negative
// display magnitudes.
type FinancialSummary struct {
	TotalRaised         float64 `json:"total_raised"`
	TotalSpent          float64 `json:"total_spent"`
	TransactionCount    int     `json:"transaction_count"`
	DonationCount       int     `json:"donation_count"`
	ExpenseCount        int     `json:"expense_count"`
	EarliestTransaction *string `json:"earliest_transaction"`
	LatestTransaction   *string `json:"latest_transaction"`
}

// SummaryStats is the upstream get_entity_summary_stats projection.
type SummaryStats struct {
	TransactionCount int      `json:"transaction_count"`
	TotalRaised      *float64 `json:"total_raised,omitempty"`
	TotalSpent       *float64 `json:"total_spent,omitempty"`
	ReportCount      int      `json:"report_count"`
	DonationCount    int      `json:"donation_count"`
	FirstActivity    *string  `json:"first_activity"`
	LastActivity     *string  `json:"last_activity"`
	CashOnHand       *float64 `json:"cash_on_hand,omitempty"`
	LargestDonation  *float64 `json:"largest_donation,omitempty"`
	AverageDonation  *float64 `json:"average_donation,omitempty"`
}
