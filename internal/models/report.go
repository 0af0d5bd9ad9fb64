package models

// Report is a filed financial report from the detailed reports procedure.
type Report struct {
	ReportID            int64    `json:"report_id"`
	RecordID            *int64   `json:"record_id,omitempty"`
	EntityID            *int64   `json:"entity_id,omitempty"`
	ReportName          string   `json:"report_name"`
	ReportPeriod        string   `json:"report_period"`
	FilingDate          string   `json:"filing_date"`
	PDFURL              *string  `json:"pdf_url"`
	TotalDonations      *float64 `json:"total_donations,omitempty"`
	TotalExpenditures   *float64 `json:"total_expenditures,omitempty"`
	DonationCount       int      `json:"donation_count"`
	StartDate           *string  `json:"start_date,omitempty"`
	EndDate             *string  `json:"end_date,omitempty"`
	CashOnHandBeginning *float64 `json:"cash_on_hand_beginning,omitempty"`
	CashOnHandEnd       *float64 `json:"cash_on_hand_end,omitempty"`
}
