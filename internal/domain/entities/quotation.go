package entities

import "time"

// Quotation is a vendor's priced offer against one item of a requirement.
//
// Tax is the total tax amount; CGST/SGST/IGST carry the split by
// jurisdiction as submitted by the vendor.
type Quotation struct {
	ID            int64     `json:"quot_id"`
	ItemID        int64     `json:"item_id"`
	RequirementID int64     `json:"req_id"`
	VendorID      int64     `json:"vendor_id"`
	Price         float64   `json:"price"`
	UnitPrice     float64   `json:"unit_price"`
	Brand         string    `json:"brand"`
	DeliveryDate  time.Time `json:"delivery_date"`
	Tax           float64   `json:"tax"`
	CGST          float64   `json:"cgst"`
	SGST          float64   `json:"sgst"`
	IGST          float64   `json:"igst"`
	AMCTerms      string    `json:"amc"`
	ItemWarranty  string    `json:"item_warranty"`
}
