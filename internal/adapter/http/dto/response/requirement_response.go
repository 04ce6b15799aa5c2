package response

import (
	"procuredesk/internal/domain/entities"
	"strconv"
	"time"
)

type RequirementResponse struct {
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

type ItemResponse struct {
	ID           int64     `json:"item_id"`
	ProductID    int64     `json:"prod_id"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	Brand        string    `json:"brand"`
	OtherBrand   string    `json:"other_brand,omitempty"`
	HSNCode      string    `json:"hsn_code,omitempty"`
	RequiredDate time.Time `json:"required_date"`
}

type QuotationResponse struct {
	ID           int64     `json:"quot_id"`
	ItemID       int64     `json:"item_id"`
	VendorID     int64     `json:"vendor_id"`
	Price        float64   `json:"price"`
	UnitPrice    float64   `json:"unit_price"`
	Brand        string    `json:"brand,omitempty"`
	DeliveryDate time.Time `json:"delivery_date"`
	Tax          float64   `json:"tax"`
	CGST         float64   `json:"cgst"`
	SGST         float64   `json:"sgst"`
	IGST         float64   `json:"igst"`
	AMCTerms     string    `json:"amc,omitempty"`
	ItemWarranty string    `json:"item_warranty,omitempty"`
}

// RequirementContextResponse is everything the evaluator would see:
// terms, items and quotations grouped by item id.
type RequirementContextResponse struct {
	Requirement      RequirementResponse            `json:"requirement"`
	Items            []ItemResponse                 `json:"items"`
	QuotationsByItem map[string][]QuotationResponse `json:"quotations_by_item"`
}

func FromEvaluationContext(evalCtx entities.EvaluationContext) RequirementContextResponse {
	items := make([]ItemResponse, 0, len(evalCtx.Items))
	for _, it := range evalCtx.Items {
		items = append(items, ItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Brand:        it.Brand,
			OtherBrand:   it.OtherBrand,
			HSNCode:      it.HSNCode,
			RequiredDate: it.RequiredDate,
		})
	}

	grouped := make(map[string][]QuotationResponse, len(evalCtx.QuotationsByItem))
	for itemID, quotations := range evalCtx.QuotationsByItem {
		bucket := make([]QuotationResponse, 0, len(quotations))
		for _, q := range quotations {
			bucket = append(bucket, QuotationResponse{
				ID:           q.ID,
				ItemID:       q.ItemID,
				VendorID:     q.VendorID,
				Price:        q.Price,
				UnitPrice:    q.UnitPrice,
				Brand:        q.Brand,
				DeliveryDate: q.DeliveryDate,
				Tax:          q.Tax,
				CGST:         q.CGST,
				SGST:         q.SGST,
				IGST:         q.IGST,
				AMCTerms:     q.AMCTerms,
				ItemWarranty: q.ItemWarranty,
			})
		}
		grouped[strconv.FormatInt(itemID, 10)] = bucket
	}

	req := evalCtx.Requirement
	return RequirementContextResponse{
		Requirement: RequirementResponse{
			ID:                  req.ID,
			Title:               req.Title,
			Description:         req.Description,
			PostedOn:            req.PostedOn,
			Category:            req.Category,
			Urgency:             req.Urgency,
			Budget:              req.Budget,
			QuotationPriceLimit: req.QuotationPriceLimit,
			DeliveryLocation:    req.DeliveryLocation,
			TaxTerms:            req.TaxTerms,
			PaymentTerms:        req.PaymentTerms,
			QuotationFreezeAt:   req.QuotationFreezeAt,
			CreatedAt:           req.CreatedAt,
		},
		Items:            items,
		QuotationsByItem: grouped,
	}
}
