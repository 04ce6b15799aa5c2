package response

import (
	"testing"
	"time"

	"procuredesk/internal/domain/entities"
)

func TestFromEvaluationContext(t *testing.T) {
	freeze := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	evalCtx := entities.EvaluationContext{
		Requirement: entities.Requirement{ID: 501, Title: "Office laptops", QuotationFreezeAt: freeze},
		Items: []entities.Item{
			{ID: 11, ProductID: 3, Description: "14in laptop", Quantity: 20},
		},
		QuotationsByItem: map[int64][]entities.Quotation{
			11: {{ID: 101, ItemID: 11, VendorID: 9001, Price: 420000}},
			12: {},
		},
	}

	resp := FromEvaluationContext(evalCtx)
	if resp.Requirement.ID != 501 || resp.Requirement.Title != "Office laptops" {
		t.Fatalf("unexpected requirement: %+v", resp.Requirement)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != 11 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if len(resp.QuotationsByItem) != 2 {
		t.Fatalf("expected both quotation buckets, got %+v", resp.QuotationsByItem)
	}
	if len(resp.QuotationsByItem["11"]) != 1 || resp.QuotationsByItem["11"][0].VendorID != 9001 {
		t.Fatalf("unexpected quotations: %+v", resp.QuotationsByItem["11"])
	}
	if len(resp.QuotationsByItem["12"]) != 0 {
		t.Fatalf("expected empty bucket for item 12")
	}
}
