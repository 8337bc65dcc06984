package dto

// SaleRequest payload for creating or updating a sale. Date uses the
// YYYY-MM-DD form.
type SaleRequest struct {
	CustomerID    *string `json:"customerId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	AssignedRepID *string `json:"assignedRepId"`
	Notes         string  `json:"notes"`
}
