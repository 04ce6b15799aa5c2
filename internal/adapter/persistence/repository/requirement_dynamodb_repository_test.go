package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Non-positive ids must be rejected before any store call; the nil client
// would panic if a query were issued.
func TestRequirementDynamoRepository_RejectsNonPositiveIDs(t *testing.T) {
	repo := NewRequirementDynamoRepository(nil)
	ctx := context.Background()

	for _, id := range []int64{0, -1, -42} {
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, ErrNonPositiveRequirementID) {
			t.Fatalf("GetByID(%d): expected ErrNonPositiveRequirementID, got %v", id, err)
		}
		if _, err := repo.ListItems(ctx, id); !errors.Is(err, ErrNonPositiveRequirementID) {
			t.Fatalf("ListItems(%d): expected ErrNonPositiveRequirementID, got %v", id, err)
		}
		if _, err := repo.ListQuotationsByItem(ctx, id); !errors.Is(err, ErrNonPositiveRequirementID) {
			t.Fatalf("ListQuotationsByItem(%d): expected ErrNonPositiveRequirementID, got %v", id, err)
		}
	}
}

func TestRecordMapping(t *testing.T) {
	t.Run("requirement", func(t *testing.T) {
		freeze := time.Date(2025, 6, 1, 12, 0, 3, 0, time.UTC)
		rec := requirementRecord{
			ID:                  501,
			Title:               "Office laptops",
			Budget:              500000,
			QuotationPriceLimit: 450000,
			QuotationFreezeAt:   freeze.Format(storedTimeLayout),
			CreatedAt:           freeze.Add(-time.Hour).Format(storedTimeLayout),
		}
		req, err := fromRequirementRecord(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ID != 501 || req.Title != "Office laptops" {
			t.Fatalf("unexpected requirement: %+v", req)
		}
		if !req.QuotationFreezeAt.Equal(freeze) {
			t.Fatalf("expected freeze %v, got %v", freeze, req.QuotationFreezeAt)
		}
	})

	t.Run("quotation", func(t *testing.T) {
		rec := quotationRecord{ID: 9, ItemID: 2, RequirementID: 501, VendorID: 77, Price: 1200.50, CGST: 9, SGST: 9}
		q, err := fromQuotationRecord(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.VendorID != 77 || q.Price != 1200.50 || q.CGST != 9 {
			t.Fatalf("unexpected quotation: %+v", q)
		}
	})

	t.Run("malformed freeze timestamp is an error, not a zero time", func(t *testing.T) {
		// A swallowed parse error would yield a zero freeze time and an
		// immediate no-wait dispatch upstream.
		rec := requirementRecord{ID: 501, QuotationFreezeAt: "not-a-time"}
		if _, err := fromRequirementRecord(rec); err == nil {
			t.Fatalf("expected error for malformed quotation_freeze_at")
		}
		if _, err := parseStoredTime("not-a-time"); err == nil {
			t.Fatalf("expected error for malformed input")
		}
	})

	t.Run("unset timestamp maps to zero time without error", func(t *testing.T) {
		ts, err := parseStoredTime("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ts.IsZero() {
			t.Fatalf("expected zero time for unset attribute")
		}
	})
}

// The discovery filter compares stored timestamps as strings, which is only
// sound when every value carries the same fractional width.
func TestStoredTimeLayoutOrdering(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := base.Add(500 * time.Millisecond)

	a := base.Format(storedTimeLayout)
	b := later.Format(storedTimeLayout)
	if !(a < b) {
		t.Fatalf("string order diverges from time order: %q vs %q", a, b)
	}

	// RFC3339Nano trims trailing zeros and breaks exactly this comparison.
	if base.Format(time.RFC3339Nano) < later.Format(time.RFC3339Nano) {
		t.Fatalf("expected RFC3339Nano to misorder these values; layout change is untested")
	}

	parsed, err := parseStoredTime(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Equal(later) {
		t.Fatalf("round trip mismatch: %v vs %v", parsed, later)
	}
}
