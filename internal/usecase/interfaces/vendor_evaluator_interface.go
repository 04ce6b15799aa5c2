package interfaces

import (
	"context"
	"procuredesk/internal/domain/entities"
)

// IVendorEvaluator abstracts the scoring backend (an LLM in production).
//
// Given the full evaluation context it returns one verdict per vendor.
// The use case validates the output structurally (verdict and score range)
// but never re-scores it.
type IVendorEvaluator interface {
	EvaluateVendors(ctx context.Context, evalCtx entities.EvaluationContext) ([]entities.EvaluationResult, error)
}
