package interfaces

import (
	"context"
	"procuredesk/internal/domain/entities"
	"time"
)

// IRequirementRepository abstracts the read-only procurement store
// (DynamoDB in production).
//
// The watcher must be able to:
//   - discover requirements created within a recency window
//   - load one requirement's terms
//   - load the requirement's items and its quotations grouped by item
//
// Not-found lookups return zero values with a nil error; the use case maps
// them to domain sentinels.
type IRequirementRepository interface {
	ListCreatedSince(ctx context.Context, window time.Duration) ([]entities.RequirementSummary, error)
	GetByID(ctx context.Context, reqID int64) (entities.Requirement, error)
	ListItems(ctx context.Context, reqID int64) ([]entities.Item, error)
	ListQuotationsByItem(ctx context.Context, reqID int64) (map[int64][]entities.Quotation, error)
}
