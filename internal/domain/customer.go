package domain

// Customer is a client record in the CRM.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
	Notes   string
}
