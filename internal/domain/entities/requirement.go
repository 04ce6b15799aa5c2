package entities

import "time"

// Requirement is a buyer's procurement request as stored in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: req_id (number)
//
// A requirement is immutable once posted; this service only reads it.
// Quotations are accepted until QuotationFreezeAt, after which the
// evaluation pipeline may run.
type Requirement struct {
	ID                  int64     `json:"req_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	PostedOn            time.Time `json:"posted_on"`
	Category            string    `json:"category"`
	Urgency             string    `json:"urgency"`
	Budget              float64   `json:"budget"`
	QuotationPriceLimit float64   `json:"quotation_price_limit"`
	DeliveryLocation    string    `json:"delivery_location"`
	TaxTerms            string    `json:"tax_terms"`
	PaymentTerms        string    `json:"payment_terms"`
	QuotationFreezeAt   time.Time `json:"quotation_freeze_at"`
	CreatedAt           time.Time `json:"created_at"`
}

// RequirementSummary is the lightweight projection the scheduler works
// with during discovery: just enough to dedupe and compute the freeze wait.
type RequirementSummary struct {
	ID                int64     `json:"req_id"`
	QuotationFreezeAt time.Time `json:"quotation_freeze_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// ValidRequirementID reports whether id is a well-formed requirement
// identifier (positive integer). Gatekeeping happens before any store
// query is issued.
func ValidRequirementID(id int64) bool {
	return id > 0
}
