package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"procuredesk/internal/domain/entities"
	"procuredesk/internal/usecase/interfaces"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrEvaluatorNotConfigured = errors.New("vendor evaluator not configured")

const (
	defaultModel   = "gpt-4-turbo"
	defaultBaseURL = "https://api.openai.com/v1"

	systemPrompt = "You are an expert in procurement analysis."
)

// OpenAIEvaluator scores vendor quotations with a chat-completion model.
//
// The model receives the full evaluation context as JSON and must answer
// with a JSON array of per-vendor verdicts; anything else fails the
// evaluation stage upstream.
type OpenAIEvaluator struct {
	client   *http.Client
	apiKey   string
	model    string
	baseURL  string
	mockMode bool
}

var _ interfaces.IVendorEvaluator = (*OpenAIEvaluator)(nil)

func NewOpenAIEvaluator(apiKey string) (*OpenAIEvaluator, error) {
	if isEvaluatorMockEnabled() {
		log.Printf("[evaluation][gateway] mock mode enabled")
		return &OpenAIEvaluator{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[evaluation][gateway] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}

	e := &OpenAIEvaluator{
		client:  &http.Client{Timeout: 90 * time.Second},
		apiKey:  apiKey,
		model:   getenvDefault("OPENAI_MODEL", defaultModel),
		baseURL: strings.TrimRight(getenvDefault("OPENAI_BASE_URL", defaultBaseURL), "/"),
	}
	log.Printf("[evaluation][gateway] OpenAI client initialized model=%s", e.model)
	return e, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type vendorVerdict struct {
	VendorID      int64   `json:"vendor_id"`
	Status        string  `json:"status"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

func (e *OpenAIEvaluator) EvaluateVendors(ctx context.Context, evalCtx entities.EvaluationContext) ([]entities.EvaluationResult, error) {
	if e != nil && e.mockMode {
		return e.mockEvaluate(evalCtx), nil
	}
	if e == nil || e.client == nil {
		log.Printf("[evaluation][gateway] gateway not configured")
		return nil, ErrEvaluatorNotConfigured
	}

	prompt, err := buildPrompt(evalCtx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[evaluation][gateway] evaluate start req_id=%d vendors=%d payload_len=%d",
		evalCtx.Requirement.ID, len(evalCtx.VendorIDs()), len(payload))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		log.Printf("[evaluation][gateway] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("completion request failed status=%d type=%s: %s",
				resp.StatusCode, parsed.Error.Type, parsed.Error.Message)
		}
		return nil, fmt.Errorf("completion request failed status=%d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("completion response has no choices")
	}

	results, err := parseVerdicts(parsed.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	log.Printf("[evaluation][gateway] evaluate success req_id=%d verdicts=%d", evalCtx.Requirement.ID, len(results))
	return results, nil
}

func buildPrompt(evalCtx entities.EvaluationContext) (string, error) {
	reqJSON, err := json.MarshalIndent(evalCtx.Requirement, "", "  ")
	if err != nil {
		return "", err
	}
	itemsJSON, err := json.MarshalIndent(evalCtx.Items, "", "  ")
	if err != nil {
		return "", err
	}
	quotationsJSON, err := json.MarshalIndent(evalCtx.QuotationsByItem, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a procurement evaluation assistant. Given a set of buyer requirements, item details, and vendor quotations,\n")
	b.WriteString("determine which vendors should be accepted or rejected. Provide a contextual semantic similarity score for each vendor.\n\n")
	b.WriteString("## Buyer Requirements:\n")
	b.Write(reqJSON)
	b.WriteString("\n\n## Items:\n")
	b.Write(itemsJSON)
	b.WriteString("\n\n## Vendor Quotations (grouped by item id):\n")
	b.Write(quotationsJSON)
	b.WriteString("\n\nEvaluate vendors based on overall suitability, price, delivery time, brand relevance, warranty, and other contextual factors.\n")
	b.WriteString("Answer with ONLY a JSON array, one element per vendor, in this exact shape:\n")
	b.WriteString(`[{"vendor_id": 123, "status": "ACCEPT", "score": 87.5, "justification": "..."}]` + "\n")
	b.WriteString(`"status" must be "ACCEPT" or "REJECT" and "score" must be a number between 0 and 100.` + "\n")
	return b.String(), nil
}

// parseVerdicts extracts the JSON array out of the completion text,
// tolerating markdown code fences and surrounding prose.
func parseVerdicts(content string) ([]entities.EvaluationResult, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("completion contains no verdict array: %q", truncate(content, 200))
	}

	var verdicts []vendorVerdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &verdicts); err != nil {
		return nil, fmt.Errorf("malformed verdict array: %w", err)
	}

	results := make([]entities.EvaluationResult, 0, len(verdicts))
	for _, v := range verdicts {
		results = append(results, entities.EvaluationResult{
			VendorID:      v.VendorID,
			Verdict:       entities.Verdict(strings.ToUpper(strings.TrimSpace(v.Status))),
			Score:         v.Score,
			Justification: v.Justification,
		})
	}
	return results, nil
}

// mockEvaluate produces deterministic verdicts for local runs and tests:
// one result per distinct vendor, accepting vendors whose total quoted
// price fits the requirement's price limit (budget when no limit is set)
// and whose deliveries meet the items' required dates.
func (e *OpenAIEvaluator) mockEvaluate(evalCtx entities.EvaluationContext) []entities.EvaluationResult {
	limit := evalCtx.Requirement.QuotationPriceLimit
	if limit <= 0 {
		limit = evalCtx.Requirement.Budget
	}

	requiredDates := make(map[int64]time.Time, len(evalCtx.Items))
	for _, it := range evalCtx.Items {
		requiredDates[it.ID] = it.RequiredDate
	}

	totals := map[int64]float64{}
	late := map[int64]bool{}
	for itemID, quotations := range evalCtx.QuotationsByItem {
		for _, q := range quotations {
			totals[q.VendorID] += q.Price
			required := requiredDates[itemID]
			if !required.IsZero() && q.DeliveryDate.After(required) {
				late[q.VendorID] = true
			}
		}
	}

	vendorIDs := make([]int64, 0, len(totals))
	for id := range totals {
		vendorIDs = append(vendorIDs, id)
	}
	sort.Slice(vendorIDs, func(i, j int) bool { return vendorIDs[i] < vendorIDs[j] })

	results := make([]entities.EvaluationResult, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		verdict := entities.VerdictAccept
		score := 85.0
		justification := "quoted within the price limit with acceptable delivery dates"

		if limit > 0 && totals[vendorID] > limit {
			verdict = entities.VerdictReject
			score = 30
			justification = "total quoted price exceeds the requirement's price limit"
		} else if late[vendorID] {
			verdict = entities.VerdictReject
			score = 45
			justification = "quoted delivery date misses the item's required date"
		}

		results = append(results, entities.EvaluationResult{
			VendorID:      vendorID,
			Verdict:       verdict,
			Score:         score,
			Justification: justification,
		})
	}
	log.Printf("[evaluation][gateway] mock evaluate req_id=%d verdicts=%d", evalCtx.Requirement.ID, len(results))
	return results
}

func isEvaluatorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EVALUATOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
