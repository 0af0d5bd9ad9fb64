package models

// Donation is a contribution line within a report, paginated the same way as
// Transaction (denormalized TotalCount per row).
type Donation struct {
	DonationID        int64   `json:"donation_id"`
	ReportID          int64   `json:"report_id"`
	EntityID          int64   `json:"entity_id"`
	ReportName        string  `json:"report_name"`
	FilingDate        string  `json:"filing_date"`
	DonationDate      string  `json:"donation_date"`
	Amount            float64 `json:"amount"`
	DonorName         string  `json:"donor_name"`
	DonorType         string  `json:"donor_type"`
	DonorFirstName    *string `json:"donor_first_name"`
	DonorLastName     *string `json:"donor_last_name"`
	DonorOrganization *string `json:"donor_organization"`
	Occupation        *string `json:"occupation"`
	Employer          *string `json:"employer"`
	Address           *string `json:"address"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	Zip               *string `json:"zip"`
	Country           *string `json:"country"`
	IsIndividual      bool    `json:"is_individual"`
	TotalCount        int     `json:"total_count"`
}
