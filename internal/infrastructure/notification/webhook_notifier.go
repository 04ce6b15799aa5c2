package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"procuredesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WebhookNotifier announces newly opened requirements to the vendor
// channel with a single POST. Without a configured URL it degrades to
// log-only, which keeps local runs and tests self-contained.
//
// The scheduler treats every notification as best-effort; errors returned
// here are logged there and never block dispatch.
type WebhookNotifier struct {
	client     *http.Client
	webhookURL string
}

var _ interfaces.IVendorNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	if webhookURL == "" {
		log.Printf("[notification][gateway] no VENDOR_WEBHOOK_URL set, notifications are log-only")
		return &WebhookNotifier{}
	}
	return &WebhookNotifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		webhookURL: webhookURL,
	}
}

type openEvent struct {
	EventID       string `json:"event_id"`
	Event         string `json:"event"`
	RequirementID int64  `json:"req_id"`
	NotifiedAt    string `json:"notified_at"`
}

func (n *WebhookNotifier) NotifyRequirementOpen(ctx context.Context, reqID int64) error {
	if n.webhookURL == "" {
		log.Printf("[notification][gateway] notifying all vendors req_id=%d (log-only)", reqID)
		return nil
	}

	payload, err := json.Marshal(openEvent{
		EventID:       uuid.NewString(),
		Event:         "requirement.open",
		RequirementID: reqID,
		NotifiedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("vendor webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notification][gateway] vendors notified req_id=%d status=%d", reqID, resp.StatusCode)
	return nil
}
