package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	attrID        = "id"
	attrName      = "name"
	attrDocuments = "documents"
	attrHistory   = "history"
	attrVersion   = "version"
)

var errMalformedColumn = errors.New("malformed json column")

// ServiceRecordDynamoRepository persists service records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - documents, history: JSON arrays stored as strings
//   - version: number, absent on rows written before versioning
//
// Writes are conditional on the version read by the caller. A failed condition
// returns the old item, which tells a missing row apart from a stale version.

type ServiceRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	log       *logger.Logger
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb DynamoAPI, tableName string, log *logger.Logger) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		log:       log.With("component", "ServiceRecordDynamoRepository"),
	}
}

func (r *ServiceRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}

	rec, err := fromServiceItem(out.Item)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("service %s: %w", id, err)
	}
	return rec, nil
}

// ListAll scans the whole table without the history column. A row whose
// documents column does not decode is returned with no documents so one bad row
// never hides the others.
func (r *ServiceRecordDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceRecord, error) {
	var (
		records []entities.ServiceRecord
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#id, #name, #documents, #version"),
			ExpressionAttributeNames: map[string]string{
				"#id":        attrID,
				"#name":      attrName,
				"#documents": attrDocuments,
				"#version":   attrVersion,
			},
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			rec, err := fromServiceItem(item)
			if err != nil {
				id := stringAttr(item, attrID)
				r.log.Warn("skipping malformed documents column", "service_id", id, "error", err)
				rec = entities.ServiceRecord{
					ID:        id,
					Name:      stringAttr(item, attrName),
					Documents: []entities.Document{},
					History:   []entities.HistoryEvent{},
				}
			}
			records = append(records, rec)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startAt = out.LastEvaluatedKey
	}
	return records, nil
}

func (r *ServiceRecordDynamoRepository) SaveDocuments(ctx context.Context, id string, docs []entities.Document, expectedVersion int64) error {
	raw, err := entities.EncodeDocuments(docs)
	if err != nil {
		return err
	}
	return r.save(ctx, id, attrDocuments, string(raw), expectedVersion)
}

func (r *ServiceRecordDynamoRepository) SaveHistory(ctx context.Context, id string, history []entities.HistoryEvent, expectedVersion int64) error {
	raw, err := entities.EncodeHistory(history)
	if err != nil {
		return err
	}
	return r.save(ctx, id, attrHistory, string(raw), expectedVersion)
}

func (r *ServiceRecordDynamoRepository) save(ctx context.Context, id, column, payload string, expectedVersion int64) error {
	condition := "attribute_exists(#id) AND #version = :expected"
	if expectedVersion == 0 {
		condition = "attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :expected)"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(condition),
		UpdateExpression:    aws.String("SET #column = :payload, #version = :next"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":  &types.AttributeValueMemberS{Value: payload},
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			":next":     &types.AttributeValueMemberN{Value: int64ToString(expectedVersion + 1)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#column": column},
			map[string]string{"#id": attrID, "#version": attrVersion},
		),
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return nil
	}

	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		if len(cfe.Item) == 0 {
			return interfaces.ErrServiceRecordNotFound
		}
		return interfaces.ErrVersionConflict
	}
	return err
}

func fromServiceItem(item map[string]types.AttributeValue) (entities.ServiceRecord, error) {
	rec := entities.ServiceRecord{
		ID:   stringAttr(item, attrID),
		Name: stringAttr(item, attrName),
	}

	if n, ok := item[attrVersion].(*types.AttributeValueMemberN); ok {
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return entities.ServiceRecord{}, fmt.Errorf("version: %w", err)
		}
		rec.Version = v
	}

	raw, err := jsonColumn(item, attrDocuments)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if rec.Documents, err = entities.DecodeDocuments(raw); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("%w: documents: %v", errMalformedColumn, err)
	}

	raw, err = jsonColumn(item, attrHistory)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if rec.History, err = entities.DecodeHistory(raw); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("%w: history: %v", errMalformedColumn, err)
	}
	return rec, nil
}

// jsonColumn returns the raw JSON held in a string attribute. A missing or NULL
// attribute reads as nil, which decodes to an empty array.
func jsonColumn(item map[string]types.AttributeValue, name string) ([]byte, error) {
	switch v := item[name].(type) {
	case nil, *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberS:
		return []byte(v.Value), nil
	default:
		return nil, fmt.Errorf("%w: %s is %T", errMalformedColumn, name, v)
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
