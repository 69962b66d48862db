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

const defaultSignaturesTableName = "signatures"

type signatureItem struct {
	ID            string `dynamodbav:"id"`
	QuoteID       string `dynamodbav:"quote_id"`
	SignatureType string `dynamodbav:"signature_type"`
	SignatureData string `dynamodbav:"signature_data"`

	SignerName string `dynamodbav:"signer_name"`
	SignerRole string `dynamodbav:"signer_role,omitempty"`
	IPAddress  string `dynamodbav:"ip_address,omitempty"`
	UserAgent  string `dynamodbav:"user_agent,omitempty"`
	DeviceInfo string `dynamodbav:"device_info,omitempty"`
	CapturedAt string `dynamodbav:"captured_at"`

	IsValid           bool   `dynamodbav:"is_valid"`
	InvalidatedReason string `dynamodbav:"invalidated_reason,omitempty"`
	InvalidatedBy     string `dynamodbav:"invalidated_by,omitempty"`
	InvalidatedAt     string `dynamodbav:"invalidated_at,omitempty"`

	NameVerified   bool   `dynamodbav:"name_verified"`
	NameVerifiedBy string `dynamodbav:"name_verified_by,omitempty"`
	NameVerifiedAt string `dynamodbav:"name_verified_at,omitempty"`
}

// SignatureDynamoRepository persists SignatureRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (quote_id-index): quote_id, range key captured_at
//
// Records only ever gain invalidation/verification fields; nothing deletes
// them. Every write lands together with its audit events in one
// TransactWriteItems call.

type SignatureDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	quoteTable string
	auditTable string
}

var _ interfaces.ISignatureRepository = (*SignatureDynamoRepository)(nil)

func NewSignatureDynamoRepository(ddb *dynamodb.Client) *SignatureDynamoRepository {
	return &SignatureDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("SIGNATURES_TABLE", defaultSignaturesTableName),
		quoteTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		auditTable: auditEventsTableName(),
	}
}

func (r *SignatureDynamoRepository) GetByID(ctx context.Context, id string) (entities.SignatureRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignatureRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignatureRecord{}, nil
	}

	var it signatureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignatureRecord{}, err
	}
	return fromSignatureItem(it), nil
}

func (r *SignatureDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.SignatureRecord, error) {
	var records []entities.SignatureRecord

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String("quote_id-index"),
			KeyConditionExpression: aws.String("#quote_id = :quote_id"),
			ExpressionAttributeNames: map[string]string{
				"#quote_id": "quote_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":quote_id": &types.AttributeValueMemberS{Value: quoteID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it signatureItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			records = append(records, fromSignatureItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CapturedAt.Before(records[j].CapturedAt)
	})
	return records, nil
}

func (r *SignatureDynamoRepository) CommitCapture(ctx context.Context, capture interfaces.SignatureCapture) error {
	newAv, err := attributevalue.MarshalMap(toSignatureItem(capture.Record))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                newAv,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	if capture.Superseded != nil {
		tx, err := r.validGuardedPutTx(*capture.Superseded)
		if err != nil {
			return err
		}
		items = append(items, tx)
	}

	quoteTx, err := quotePutTx(r.quoteTable, capture.Quote, capture.ExpectedQuoteVersion)
	if err != nil {
		return err
	}
	items = append(items, quoteTx)

	items, err = appendAuditEvents(items, r.auditTable, capture.Events)
	if err != nil {
		return err
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func (r *SignatureDynamoRepository) Invalidate(ctx context.Context, rec entities.SignatureRecord, event entities.AuditEvent) error {
	return r.writeGuarded(ctx, rec, event)
}

func (r *SignatureDynamoRepository) UpdateNameVerification(ctx context.Context, rec entities.SignatureRecord, event entities.AuditEvent) error {
	return r.writeGuarded(ctx, rec, event)
}

// writeGuarded replaces the record with its post-image, conditioned on the
// stored record still being valid, and appends the audit event in the same
// transaction.
func (r *SignatureDynamoRepository) writeGuarded(ctx context.Context, rec entities.SignatureRecord, event entities.AuditEvent) error {
	recTx, err := r.validGuardedPutTx(rec)
	if err != nil {
		return err
	}

	items, err := appendAuditEvents([]types.TransactWriteItem{recTx}, r.auditTable, []entities.AuditEvent{event})
	if err != nil {
		return err
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func (r *SignatureDynamoRepository) validGuardedPutTx(rec entities.SignatureRecord) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toSignatureItem(rec))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #is_valid = :true"),
			ExpressionAttributeNames: map[string]string{
				"#id":       "id",
				"#is_valid": "is_valid",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
		},
	}, nil
}

func toSignatureItem(rec entities.SignatureRecord) signatureItem {
	return signatureItem{
		ID:            rec.ID,
		QuoteID:       rec.QuoteID,
		SignatureType: string(rec.SignatureType),
		SignatureData: rec.SignatureData,

		SignerName: rec.SignerName,
		SignerRole: rec.SignerRole,
		IPAddress:  rec.IPAddress,
		UserAgent:  rec.UserAgent,
		DeviceInfo: rec.DeviceInfo,
		CapturedAt: formatTime(rec.CapturedAt),

		IsValid:           rec.IsValid,
		InvalidatedReason: rec.InvalidatedReason,
		InvalidatedBy:     rec.InvalidatedBy,
		InvalidatedAt:     formatTimePtr(rec.InvalidatedAt),

		NameVerified:   rec.NameVerified,
		NameVerifiedBy: rec.NameVerifiedBy,
		NameVerifiedAt: formatTimePtr(rec.NameVerifiedAt),
	}
}

func fromSignatureItem(it signatureItem) entities.SignatureRecord {
	return entities.SignatureRecord{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		SignatureType: entities.SignatureType(it.SignatureType),
		SignatureData: it.SignatureData,

		SignerName: it.SignerName,
		SignerRole: it.SignerRole,
		IPAddress:  it.IPAddress,
		UserAgent:  it.UserAgent,
		DeviceInfo: it.DeviceInfo,
		CapturedAt: parseTime(it.CapturedAt),

		IsValid:           it.IsValid,
		InvalidatedReason: it.InvalidatedReason,
		InvalidatedBy:     it.InvalidatedBy,
		InvalidatedAt:     parseTimePtr(it.InvalidatedAt),

		NameVerified:   it.NameVerified,
		NameVerifiedBy: it.NameVerifiedBy,
		NameVerifiedAt: parseTimePtr(it.NameVerifiedAt),
	}
}
