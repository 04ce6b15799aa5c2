package entities

import "time"

// Item is a single product specification line within a requirement.
// Read-only from this service's perspective.
type Item struct {
	ID            int64     `json:"item_id"`
	RequirementID int64     `json:"req_id"`
	ProductID     int64     `json:"prod_id"`
	Description   string    `json:"description"`
	Quantity      int       `json:"quantity"`
	Brand         string    `json:"brand"`
	OtherBrand    string    `json:"other_brand"`
	HSNCode       string    `json:"hsn_code"`
	RequiredDate  time.Time `json:"required_date"`
}
