package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
	paymentsSequenceName     = "payments"
)

type paymentItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	CustomerName string `dynamodbav:"customer_name"`
	PhoneNumber  string `dynamodbav:"phone_number,omitempty"`
	Amount       int64  `dynamodbav:"amount"`
	Method       string `dynamodbav:"method"`
	Reference    string `dynamodbav:"reference"`
	Date         string `dynamodbav:"date"`
	InvoiceID    string `dynamodbav:"invoice_id,omitempty"`
	Status       string `dynamodbav:"status"`
}

// PaymentDynamoLedger persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Sequence numbers live in the shared counters table, see sequence.go.

type PaymentDynamoLedger struct {
	ddb       *dynamodb.Client
	tableName string
	counters  *dynamoSequence
}

var _ interfaces.IPaymentLedger = (*PaymentDynamoLedger)(nil)

func NewPaymentDynamoLedger(ddb *dynamodb.Client) *PaymentDynamoLedger {
	return &PaymentDynamoLedger{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		counters:  newDynamoSequence(ddb, paymentsSequenceName),
	}
}

func (r *PaymentDynamoLedger) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoLedger) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoLedger) List(ctx context.Context) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *PaymentDynamoLedger) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoLedger) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoLedger) NextSequence(ctx context.Context) (int64, error) {
	return r.counters.Next(ctx)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		PhoneNumber:  p.PhoneNumber,
		Amount:       p.Amount,
		Method:       string(p.Method),
		Reference:    p.Reference,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		InvoiceID:    p.InvoiceID,
		Status:       string(p.Status),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Payment{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		PhoneNumber:  it.PhoneNumber,
		Amount:       it.Amount,
		Method:       entities.PaymentMethod(it.Method),
		Reference:    it.Reference,
		Date:         dt,
		InvoiceID:    it.InvoiceID,
		Status:       entities.PaymentStatus(it.Status),
	}
}
