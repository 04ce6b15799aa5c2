package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"procuredesk/internal/domain/entities"
	"procuredesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff"
)

const (
	defaultRequirementsTableName = "requirements"
	defaultItemsTableName        = "requirement_items"
	defaultQuotationsTableName   = "quotations"

	itemsRequirementIDIndex      = "req_id-index"
	quotationsRequirementIDIndex = "req_id-index"

	// Discovery scans survive short store blips instead of losing a cycle's
	// recency window.
	discoveryScanMaxRetries = 2

	// Fixed-width fractional seconds keep string comparison aligned with
	// time order. RFC3339Nano trims trailing zeros, which would make
	// "...T12:00:00Z" sort after "...T12:00:00.5Z".
	storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var ErrNonPositiveRequirementID = errors.New("requirement id must be a positive integer")

type requirementRecord struct {
	ID                  int64   `dynamodbav:"req_id"`
	Title               string  `dynamodbav:"title"`
	Description         string  `dynamodbav:"description"`
	PostedOn            string  `dynamodbav:"posted_on"`
	Category            string  `dynamodbav:"category"`
	Urgency             string  `dynamodbav:"urgency"`
	Budget              float64 `dynamodbav:"budget"`
	QuotationPriceLimit float64 `dynamodbav:"quotation_price_limit"`
	DeliveryLocation    string  `dynamodbav:"delivery_location"`
	TaxTerms            string  `dynamodbav:"tax_terms"`
	PaymentTerms        string  `dynamodbav:"payment_terms"`
	QuotationFreezeAt   string  `dynamodbav:"quotation_freeze_at"`
	CreatedAt           string  `dynamodbav:"created_at"`
}

type itemRecord struct {
	ID            int64  `dynamodbav:"item_id"`
	RequirementID int64  `dynamodbav:"req_id"`
	ProductID     int64  `dynamodbav:"prod_id"`
	Description   string `dynamodbav:"description"`
	Quantity      int    `dynamodbav:"quantity"`
	Brand         string `dynamodbav:"brand"`
	OtherBrand    string `dynamodbav:"other_brand"`
	HSNCode       string `dynamodbav:"hsn_code"`
	RequiredDate  string `dynamodbav:"required_date"`
}

type quotationRecord struct {
	ID            int64   `dynamodbav:"quot_id"`
	ItemID        int64   `dynamodbav:"item_id"`
	RequirementID int64   `dynamodbav:"req_id"`
	VendorID      int64   `dynamodbav:"vendor_id"`
	Price         float64 `dynamodbav:"price"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	Brand         string  `dynamodbav:"brand"`
	DeliveryDate  string  `dynamodbav:"delivery_date"`
	Tax           float64 `dynamodbav:"tax"`
	CGST          float64 `dynamodbav:"cgst"`
	SGST          float64 `dynamodbav:"sgst"`
	IGST          float64 `dynamodbav:"igst"`
	AMCTerms      string  `dynamodbav:"amc"`
	ItemWarranty  string  `dynamodbav:"item_warranty"`
}

// RequirementDynamoRepository reads requirements, items and quotations from
// DynamoDB. This service never writes to the store.
//
// Table requirements:
//   - requirements:       PK req_id (number)
//   - requirement_items:  PK item_id (number), GSI req_id-index (PK: req_id)
//   - quotations:         PK quot_id (number), GSI req_id-index (PK: req_id)
//
// All timestamps are stored as fixed-width nanosecond strings (see
// storedTimeLayout), so the discovery cutoff comparison works
// lexicographically.
type RequirementDynamoRepository struct {
	ddb             *dynamodb.Client
	requirementsTbl string
	itemsTbl        string
	quotationsTbl   string
}

var _ interfaces.IRequirementRepository = (*RequirementDynamoRepository)(nil)

func NewRequirementDynamoRepository(ddb *dynamodb.Client) *RequirementDynamoRepository {
	return &RequirementDynamoRepository{
		ddb:             ddb,
		requirementsTbl: getenvDefault("REQUIREMENTS_TABLE", defaultRequirementsTableName),
		itemsTbl:        getenvDefault("REQUIREMENT_ITEMS_TABLE", defaultItemsTableName),
		quotationsTbl:   getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

// ListCreatedSince returns summaries of requirements whose created_at falls
// within the last window relative to now at query time.
func (r *RequirementDynamoRepository) ListCreatedSince(ctx context.Context, window time.Duration) ([]entities.RequirementSummary, error) {
	cutoff := time.Now().UTC().Add(-window).Format(storedTimeLayout)

	var summaries []entities.RequirementSummary
	scan := func() error {
		summaries = summaries[:0]
		var startKey map[string]types.AttributeValue
		for {
			out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:            aws.String(r.requirementsTbl),
				FilterExpression:     aws.String("created_at >= :cutoff"),
				ProjectionExpression: aws.String("req_id, quotation_freeze_at, created_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cutoff": &types.AttributeValueMemberS{Value: cutoff},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return err
			}
			for _, raw := range out.Items {
				var rec requirementRecord
				if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
					return backoff.Permanent(err)
				}
				freezeAt, err := parseStoredTime(rec.QuotationFreezeAt)
				if err != nil {
					return backoff.Permanent(fmt.Errorf("requirement %d quotation_freeze_at: %w", rec.ID, err))
				}
				createdAt, err := parseStoredTime(rec.CreatedAt)
				if err != nil {
					return backoff.Permanent(fmt.Errorf("requirement %d created_at: %w", rec.ID, err))
				}
				summaries = append(summaries, entities.RequirementSummary{
					ID:                rec.ID,
					QuotationFreezeAt: freezeAt,
					CreatedAt:         createdAt,
				})
			}
			if len(out.LastEvaluatedKey) == 0 {
				return nil
			}
			startKey = out.LastEvaluatedKey
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), discoveryScanMaxRetries), ctx)
	if err := backoff.Retry(scan, policy); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetByID returns the requirement terms, or a zero value when the id has no
// matching record.
func (r *RequirementDynamoRepository) GetByID(ctx context.Context, reqID int64) (entities.Requirement, error) {
	if !entities.ValidRequirementID(reqID) {
		return entities.Requirement{}, ErrNonPositiveRequirementID
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.requirementsTbl),
		Key: map[string]types.AttributeValue{
			"req_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(reqID, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Requirement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Requirement{}, nil
	}

	var rec requirementRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Requirement{}, err
	}
	return fromRequirementRecord(rec)
}

func (r *RequirementDynamoRepository) ListItems(ctx context.Context, reqID int64) ([]entities.Item, error) {
	if !entities.ValidRequirementID(reqID) {
		return nil, ErrNonPositiveRequirementID
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTbl),
		IndexName:              aws.String(itemsRequirementIDIndex),
		KeyConditionExpression: aws.String("req_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberN{Value: strconv.FormatInt(reqID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec itemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		item, err := fromItemRecord(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListQuotationsByItem returns all quotations for the requirement grouped
// by item id. Items without quotations are simply absent from the map; the
// use case fills in empty buckets against the item list.
func (r *RequirementDynamoRepository) ListQuotationsByItem(ctx context.Context, reqID int64) (map[int64][]entities.Quotation, error) {
	if !entities.ValidRequirementID(reqID) {
		return nil, ErrNonPositiveRequirementID
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.quotationsTbl),
		IndexName:              aws.String(quotationsRequirementIDIndex),
		KeyConditionExpression: aws.String("req_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberN{Value: strconv.FormatInt(reqID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]entities.Quotation)
	for _, raw := range out.Items {
		var rec quotationRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		quotation, err := fromQuotationRecord(rec)
		if err != nil {
			return nil, err
		}
		grouped[rec.ItemID] = append(grouped[rec.ItemID], quotation)
	}
	return grouped, nil
}

func fromRequirementRecord(rec requirementRecord) (entities.Requirement, error) {
	postedOn, err := parseStoredTime(rec.PostedOn)
	if err != nil {
		return entities.Requirement{}, fmt.Errorf("requirement %d posted_on: %w", rec.ID, err)
	}
	freezeAt, err := parseStoredTime(rec.QuotationFreezeAt)
	if err != nil {
		return entities.Requirement{}, fmt.Errorf("requirement %d quotation_freeze_at: %w", rec.ID, err)
	}
	createdAt, err := parseStoredTime(rec.CreatedAt)
	if err != nil {
		return entities.Requirement{}, fmt.Errorf("requirement %d created_at: %w", rec.ID, err)
	}
	return entities.Requirement{
		ID:                  rec.ID,
		Title:               rec.Title,
		Description:         rec.Description,
		PostedOn:            postedOn,
		Category:            rec.Category,
		Urgency:             rec.Urgency,
		Budget:              rec.Budget,
		QuotationPriceLimit: rec.QuotationPriceLimit,
		DeliveryLocation:    rec.DeliveryLocation,
		TaxTerms:            rec.TaxTerms,
		PaymentTerms:        rec.PaymentTerms,
		QuotationFreezeAt:   freezeAt,
		CreatedAt:           createdAt,
	}, nil
}

func fromItemRecord(rec itemRecord) (entities.Item, error) {
	requiredDate, err := parseStoredTime(rec.RequiredDate)
	if err != nil {
		return entities.Item{}, fmt.Errorf("item %d required_date: %w", rec.ID, err)
	}
	return entities.Item{
		ID:            rec.ID,
		RequirementID: rec.RequirementID,
		ProductID:     rec.ProductID,
		Description:   rec.Description,
		Quantity:      rec.Quantity,
		Brand:         rec.Brand,
		OtherBrand:    rec.OtherBrand,
		HSNCode:       rec.HSNCode,
		RequiredDate:  requiredDate,
	}, nil
}

func fromQuotationRecord(rec quotationRecord) (entities.Quotation, error) {
	deliveryDate, err := parseStoredTime(rec.DeliveryDate)
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("quotation %d delivery_date: %w", rec.ID, err)
	}
	return entities.Quotation{
		ID:            rec.ID,
		ItemID:        rec.ItemID,
		RequirementID: rec.RequirementID,
		VendorID:      rec.VendorID,
		Price:         rec.Price,
		UnitPrice:     rec.UnitPrice,
		Brand:         rec.Brand,
		DeliveryDate:  deliveryDate,
		Tax:           rec.Tax,
		CGST:          rec.CGST,
		SGST:          rec.SGST,
		IGST:          rec.IGST,
		AMCTerms:      rec.AMCTerms,
		ItemWarranty:  rec.ItemWarranty,
	}, nil
}

// parseStoredTime accepts any RFC3339 fractional precision on read; only
// the discovery cutoff comparison needs the fixed-width form. An unset
// attribute maps to the zero time; a malformed one is an error, never a
// silent zero (a zero freeze time would dispatch with no wait).
func parseStoredTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored timestamp %q: %w", v, err)
	}
	return t, nil
}
