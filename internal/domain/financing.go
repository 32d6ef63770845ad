package domain

// FinancingPlan represents one financing or leasing program offered by the
// dealership.
type FinancingPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	APR          float64  `json:"apr"`
	TermMonths   int      `json:"termMonths"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
