package repository

import (
	"context"
	"sort"

	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditEventsTableName = "audit_events"

func auditEventsTableName() string {
	return getenvDefault("AUDIT_EVENTS_TABLE", defaultAuditEventsTableName)
}

type auditEventItem struct {
	ID          string            `dynamodbav:"id"`
	SubjectType string            `dynamodbav:"subject_type"`
	SubjectID   string            `dynamodbav:"subject_id"`
	QuoteID     string            `dynamodbav:"quote_id"`
	EventKind   string            `dynamodbav:"event_kind"`
	Actor       string            `dynamodbav:"actor"`
	OccurredAt  string            `dynamodbav:"occurred_at"`
	Seq         int64             `dynamodbav:"seq"`
	Detail      map[string]string `dynamodbav:"detail,omitempty"`
}

// AuditEventDynamoRepository reads the append-only audit ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (quote_id-index): quote_id, range key occurred_at
//   - GSI2 (subject_id-index): subject_id, range key occurred_at
//
// There is intentionally no public write path here: events enter the table
// only through the quote/signature repository transactions, so a state
// change and its audit record can never be separated.

type AuditEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditEventDynamoRepository)(nil)

func NewAuditEventDynamoRepository(ddb *dynamodb.Client) *AuditEventDynamoRepository {
	return &AuditEventDynamoRepository{
		ddb:       ddb,
		tableName: auditEventsTableName(),
	}
}

func (r *AuditEventDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AuditEvent, error) {
	return r.queryIndex(ctx, "quote_id-index", "quote_id", quoteID)
}

func (r *AuditEventDynamoRepository) ListBySubject(ctx context.Context, subjectType entities.AuditSubjectType, subjectID string) ([]entities.AuditEvent, error) {
	events, err := r.queryIndex(ctx, "subject_id-index", "subject_id", subjectID)
	if err != nil {
		return nil, err
	}

	out := events[:0]
	for _, e := range events {
		if e.SubjectType == subjectType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *AuditEventDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": keyAttr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: keyValue},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it auditEventItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			events = append(events, fromAuditEventItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	// The index orders by occurred_at; seq breaks same-instant ties.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].OccurredAt.Equal(events[j].OccurredAt) {
			return events[i].Seq < events[j].Seq
		}
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})
	return events, nil
}

// auditEventPutTx builds the transaction item that appends one event. The
// attribute_not_exists guard keeps the ledger append-only even if an id is
// ever reused.
func auditEventPutTx(tableName string, e entities.AuditEvent) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toAuditEventItem(e))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func toAuditEventItem(e entities.AuditEvent) auditEventItem {
	return auditEventItem{
		ID:          e.ID,
		SubjectType: string(e.SubjectType),
		SubjectID:   e.SubjectID,
		QuoteID:     e.QuoteID,
		EventKind:   string(e.EventKind),
		Actor:       e.Actor,
		OccurredAt:  formatTime(e.OccurredAt),
		Seq:         e.Seq,
		Detail:      e.Detail,
	}
}

func fromAuditEventItem(it auditEventItem) entities.AuditEvent {
	return entities.AuditEvent{
		ID:          it.ID,
		SubjectType: entities.AuditSubjectType(it.SubjectType),
		SubjectID:   it.SubjectID,
		QuoteID:     it.QuoteID,
		EventKind:   entities.AuditEventKind(it.EventKind),
		Actor:       it.Actor,
		OccurredAt:  parseTime(it.OccurredAt),
		Seq:         it.Seq,
		Detail:      it.Detail,
	}
}
