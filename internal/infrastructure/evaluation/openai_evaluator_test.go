package evaluation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"procuredesk/internal/domain/entities"
)

func TestParseVerdicts(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		results, err := parseVerdicts(`[{"vendor_id": 9001, "status": "ACCEPT", "score": 88, "justification": "fits"}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].VendorID != 9001 || results[0].Verdict != entities.VerdictAccept || results[0].Score != 88 {
			t.Fatalf("unexpected results: %+v", results)
		}
	})

	t.Run("fenced array with prose", func(t *testing.T) {
		content := "Here is the evaluation:\n```json\n[{\"vendor_id\": 1, \"status\": \"reject\", \"score\": 12, \"justification\": \"over budget\"}]\n```\nLet me know."
		results, err := parseVerdicts(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Verdict != entities.VerdictReject {
			t.Fatalf("unexpected results: %+v", results)
		}
	})

	t.Run("no array", func(t *testing.T) {
		if _, err := parseVerdicts("I could not evaluate the vendors."); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed array", func(t *testing.T) {
		if _, err := parseVerdicts(`[{"vendor_id": }]`); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewOpenAIEvaluator_MissingKey(t *testing.T) {
	t.Setenv("EVALUATOR_MOCK", "")
	if _, err := NewOpenAIEvaluator(""); err != ErrMissingOpenAIAPIKey {
		t.Fatalf("expected ErrMissingOpenAIAPIKey, got %v", err)
	}
}

func TestOpenAIEvaluator_MockMode(t *testing.T) {
	required := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	evalCtx := entities.EvaluationContext{
		Requirement: entities.Requirement{ID: 501, Budget: 500000, QuotationPriceLimit: 100000},
		Items: []entities.Item{
			{ID: 11, RequirementID: 501, RequiredDate: required},
			{ID: 12, RequirementID: 501, RequiredDate: required},
		},
		QuotationsByItem: map[int64][]entities.Quotation{
			11: {{ItemID: 11, VendorID: 9001, Price: 40000, DeliveryDate: required.AddDate(0, 0, -2)}},
			12: {{ItemID: 12, VendorID: 9002, Price: 150000, DeliveryDate: required.AddDate(0, 0, -2)}},
		},
	}

	e := &OpenAIEvaluator{mockMode: true}
	results, err := e.EvaluateVendors(context.Background(), evalCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected one verdict per distinct vendor, got %d", len(results))
	}
	for _, res := range results {
		if !res.Verdict.Valid() {
			t.Fatalf("invalid verdict: %+v", res)
		}
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("score out of range: %+v", res)
		}
	}
	if results[0].VendorID != 9001 || results[0].Verdict != entities.VerdictAccept {
		t.Fatalf("expected 9001 accepted, got %+v", results[0])
	}
	if results[1].VendorID != 9002 || results[1].Verdict != entities.VerdictReject {
		t.Fatalf("expected 9002 rejected over price limit, got %+v", results[1])
	}
}

func TestOpenAIEvaluator_MockModeLateDelivery(t *testing.T) {
	required := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	evalCtx := entities.EvaluationContext{
		Requirement: entities.Requirement{ID: 7, Budget: 500000},
		Items:       []entities.Item{{ID: 1, RequiredDate: required}},
		QuotationsByItem: map[int64][]entities.Quotation{
			1: {{ItemID: 1, VendorID: 5, Price: 1000, DeliveryDate: required.AddDate(0, 0, 10)}},
		},
	}

	e := &OpenAIEvaluator{mockMode: true}
	results, err := e.EvaluateVendors(context.Background(), evalCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Verdict != entities.VerdictReject {
		t.Fatalf("expected late vendor rejected, got %+v", results)
	}
}

func TestOpenAIEvaluator_ChatCompletion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Fatalf("unexpected auth header: %q", got)
			}
			var req chatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
				t.Fatalf("unexpected messages: %+v", req.Messages)
			}

			resp := map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{
						"content": `[{"vendor_id": 42, "status": "ACCEPT", "score": 91, "justification": "best price"}]`,
					}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		e := &OpenAIEvaluator{
			client:  srv.Client(),
			apiKey:  "test-key",
			model:   defaultModel,
			baseURL: srv.URL,
		}
		results, err := e.EvaluateVendors(context.Background(), entities.EvaluationContext{
			Requirement: entities.Requirement{ID: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].VendorID != 42 || results[0].Score != 91 {
			t.Fatalf("unexpected results: %+v", results)
		}
	})

	t.Run("backend error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
		}))
		defer srv.Close()

		e := &OpenAIEvaluator{
			client:  srv.Client(),
			apiKey:  "test-key",
			model:   defaultModel,
			baseURL: srv.URL,
		}
		if _, err := e.EvaluateVendors(context.Background(), entities.EvaluationContext{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil client not configured", func(t *testing.T) {
		var e *OpenAIEvaluator
		if _, err := e.EvaluateVendors(context.Background(), entities.EvaluationContext{}); err != ErrEvaluatorNotConfigured {
			t.Fatalf("expected ErrEvaluatorNotConfigured, got %v", err)
		}
	})
}
