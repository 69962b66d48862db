package repository

import (
	"context"
	"time"

	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type lineItemItem struct {
	ID             string `dynamodbav:"id"`
	Description    string `dynamodbav:"description"`
	Quantity       int    `dynamodbav:"quantity"`
	UnitPriceCents int64  `dynamodbav:"unit_price_cents"`
}

type quoteItem struct {
	ID             string         `dynamodbav:"id"`
	CustomerName   string         `dynamodbav:"customer_name"`
	Status         string         `dynamodbav:"status"`
	LineItems      []lineItemItem `dynamodbav:"line_items,omitempty"`
	CancelReason   string         `dynamodbav:"cancel_reason,omitempty"`
	LastActivityAt string         `dynamodbav:"last_activity_at"`
	SignedAt       string         `dynamodbav:"signed_at,omitempty"`
	CompletedAt    string         `dynamodbav:"completed_at,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
	Version        int64          `dynamodbav:"version"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Concurrency model: every mutating write replaces the full item and is
// conditioned on the stored version still matching the caller's read.
// Audit events ride in the same TransactWriteItems call, so a state change
// and its ledger entry commit or fail together.

type QuoteDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	auditTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		auditTable: auditEventsTableName(),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote, events []entities.AuditEvent) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	items, err = appendAuditEvents(items, r.auditTable, events)
	if err != nil {
		return entities.Quote{}, err
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateWithVersion(ctx context.Context, q entities.Quote, expectedVersion int64, events []entities.AuditEvent) (entities.Quote, error) {
	items, err := quotePutTx(r.tableName, q, expectedVersion)
	if err != nil {
		return entities.Quote{}, err
	}

	txItems := []types.TransactWriteItem{items}
	txItems, err = appendAuditEvents(txItems, r.auditTable, events)
	if err != nil {
		return entities.Quote{}, err
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txItems}); err != nil {
		if isConditionalFailure(err) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListStale(ctx context.Context, cutoff time.Time) ([]entities.Quote, error) {
	var quotes []entities.Quote

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status IN (:building, :draft, :presented, :signed) AND #last_activity_at < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status":           "status",
				"#last_activity_at": "last_activity_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":building":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusBuilding)},
				":draft":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)},
				":presented": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPresented)},
				":signed":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSigned)},
				":cutoff":    &types.AttributeValueMemberS{Value: formatTime(cutoff)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

// quotePutTx builds the version-guarded full-item replacement used by
// every quote mutation, including the signature repository's capture
// transaction.
func quotePutTx(tableName string, q entities.Quote, expectedVersion int64) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: formatInt(expectedVersion)},
			},
		},
	}, nil
}

func appendAuditEvents(items []types.TransactWriteItem, auditTable string, events []entities.AuditEvent) ([]types.TransactWriteItem, error) {
	for _, e := range events {
		tx, err := auditEventPutTx(auditTable, e)
		if err != nil {
			return nil, err
		}
		items = append(items, tx)
	}
	return items, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]lineItemItem, len(q.LineItems))
	for i, li := range q.LineItems {
		items[i] = lineItemItem(li)
	}

	cancelReason := ""
	if q.CancelReason != nil {
		cancelReason = string(*q.CancelReason)
	}

	return quoteItem{
		ID:             q.ID,
		CustomerName:   q.CustomerName,
		Status:         string(q.Status),
		LineItems:      items,
		CancelReason:   cancelReason,
		LastActivityAt: formatTime(q.LastActivityAt),
		SignedAt:       formatTimePtr(q.SignedAt),
		CompletedAt:    formatTimePtr(q.CompletedAt),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
		Version:        q.Version,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.LineItem, len(it.LineItems))
	for i, li := range it.LineItems {
		items[i] = entities.LineItem(li)
	}

	var cancelReason *entities.CancelReason
	if it.CancelReason != "" {
		r := entities.CancelReason(it.CancelReason)
		cancelReason = &r
	}

	return entities.Quote{
		ID:             it.ID,
		CustomerName:   it.CustomerName,
		Status:         entities.QuoteStatus(it.Status),
		LineItems:      items,
		CancelReason:   cancelReason,
		LastActivityAt: parseTime(it.LastActivityAt),
		SignedAt:       parseTimePtr(it.SignedAt),
		CompletedAt:    parseTimePtr(it.CompletedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}
