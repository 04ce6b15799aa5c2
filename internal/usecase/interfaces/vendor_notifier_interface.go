package interfaces

import "context"

// IVendorNotifier signals vendors that a requirement is open for bidding.
//
// Fire-and-forget from the scheduler's point of view: a returned error is
// logged and never aborts dispatch of the requirement.
type IVendorNotifier interface {
	NotifyRequirementOpen(ctx context.Context, reqID int64) error
}
