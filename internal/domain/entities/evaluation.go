package entities

import (
	"sort"
	"time"
)

// Verdict is the evaluator's per-vendor decision.
type Verdict string

const (
	VerdictAccept Verdict = "ACCEPT"
	VerdictReject Verdict = "REJECT"
)

// Valid reports whether v is one of the two allowed verdicts.
func (v Verdict) Valid() bool {
	return v == VerdictAccept || v == VerdictReject
}

// EvaluationResult is one vendor's outcome: verdict, a contextual
// similarity score in [0,100] and a free-text justification.
type EvaluationResult struct {
	VendorID      int64   `json:"vendor_id"`
	Verdict       Verdict `json:"verdict"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// EvaluationContext is the full picture handed to the evaluator:
// the requirement terms, its items and all quotations grouped by item.
type EvaluationContext struct {
	Requirement      Requirement           `json:"requirement"`
	Items            []Item                `json:"items"`
	QuotationsByItem map[int64][]Quotation `json:"quotations_by_item"`
}

// VendorIDs returns the distinct vendor ids across all quotations,
// sorted ascending.
func (c EvaluationContext) VendorIDs() []int64 {
	seen := map[int64]struct{}{}
	for _, quotations := range c.QuotationsByItem {
		for _, q := range quotations {
			seen[q.VendorID] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EvaluationReport is the pipeline's final output for one requirement.
// It is returned to the caller and logged, never persisted.
type EvaluationReport struct {
	RequirementID int64              `json:"req_id"`
	EvaluatedAt   time.Time          `json:"evaluated_at"`
	Results       []EvaluationResult `json:"results"`
}

// Accepted returns how many vendors were accepted.
func (r EvaluationReport) Accepted() int {
	n := 0
	for _, res := range r.Results {
		if res.Verdict == VerdictAccept {
			n++
		}
	}
	return n
}

// Rejected returns how many vendors were rejected.
func (r EvaluationReport) Rejected() int {
	return len(r.Results) - r.Accepted()
}
