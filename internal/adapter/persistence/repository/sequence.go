package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// dynamoSequence hands out monotonically increasing ids from a shared
// counters table using an atomic ADD. Each record family (payments, invoices)
// owns one row keyed by name.
//
// Table requirements:
//   - PK: name (string)
//   - attribute: seq (number)
type dynamoSequence struct {
	ddb       *dynamodb.Client
	tableName string
	name      string
}

func newDynamoSequence(ddb *dynamodb.Client, name string) *dynamoSequence {
	return &dynamoSequence{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		name:      name,
	}
}

func (s *dynamoSequence) Next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: s.name},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counters table returned no seq attribute")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
