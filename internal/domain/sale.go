package domain

import "time"

// SaleStatus enumerates transaction lifecycle states.
type SaleStatus string

const (
	SaleStatusProposal       SaleStatus = "PROPOSAL"
	SaleStatusPending        SaleStatus = "PENDING"
	SaleStatusApproved       SaleStatus = "APPROVED"
	SaleStatusCompleted      SaleStatus = "COMPLETED"
	SaleStatusPaymentPending SaleStatus = "PAYMENT_PENDING"
	SaleStatusOnHold         SaleStatus = "ON_HOLD"
	SaleStatusCancelled      SaleStatus = "CANCELLED"
	SaleStatusRefunded       SaleStatus = "REFUNDED"
)

// Sale is a transaction tied to a customer and a sales rep.
type Sale struct {
	ID            string
	CustomerID    *string
	Amount        float64
	Status        SaleStatus
	Date          time.Time
	AssignedRepID *string
	CreatedBy     string
	Notes         string
	CreatedAt     time.Time
}
