package repository

import (
	"context"
	"sort"
	"time"

	"service_documents/internal/domain/entities"
	"service_documents/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsQuoteKeyIndex = "quote_key-index"

type quotePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ServiceID          string                 `dynamodbav:"service_id"`
	QuoteNumber        string                 `dynamodbav:"quote_number"`
	QuoteKey           string                 `dynamodbav:"quote_key"`
	Amount             string                 `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_key-index (PK: quote_key)

type QuotePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb DynamoAPI, tableName string) *QuotePaymentDynamoRepository {
	return &QuotePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	av, err := attributevalue.MarshalMap(toQuotePaymentItem(p))
	if err != nil {
		return entities.QuotePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotePayment{}, nil
	}

	var it quotePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotePayment{}, err
	}
	return fromQuotePaymentItem(it), nil
}

// ListByQuote returns the payments of one quote, oldest first.
func (r *QuotePaymentDynamoRepository) ListByQuote(ctx context.Context, serviceID, quoteNumber string) ([]entities.QuotePayment, error) {
	var (
		items   []entities.QuotePayment
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsQuoteKeyIndex),
			KeyConditionExpression: aws.String("quote_key = :qk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qk": &types.AttributeValueMemberS{Value: entities.QuoteKey(serviceID, quoteNumber)},
			},
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quotePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuotePaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startAt = out.LastEvaluatedKey
	}

	if items == nil {
		items = []entities.QuotePayment{}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:                 p.ID,
		ServiceID:          p.ServiceID,
		QuoteNumber:        p.QuoteNumber,
		QuoteKey:           entities.QuoteKey(p.ServiceID, p.QuoteNumber),
		Amount:             floatToString(p.Amount),
		Currency:           p.Currency,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) entities.QuotePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := parseFloat(it.Amount)
	return entities.QuotePayment{
		ID:                 it.ID,
		ServiceID:          it.ServiceID,
		QuoteNumber:        it.QuoteNumber,
		Amount:             amount,
		Currency:           it.Currency,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
