package models

// SearchResult is one ranked match from the external search procedure.
// Ordering and the similarity score are owned upstream.
type SearchResult struct {
	EntityID       int64   `json:"entity_id"`
	Name           string  `json:"name"`
	PartyName      *string `json:"party_name"`
	OfficeName     *string `json:"office_name"`
	LatestActivity *string `json:"latest_activity"`
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
	Similarity     float64 `json:"similarity"`
}
