package repository

import (
	"context"
	"errors"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReceiptsTableName = "receipts"

// ErrReceiptExists signals the conditional insert lost to an earlier
// receipt for the same (user, order code) pair.
var ErrReceiptExists = errors.New("receipt already exists")

type receiptItem struct {
	UserID    string `dynamodbav:"user_id"`
	OrderCode string `dynamodbav:"order_code"`
	Text      string `dynamodbav:"text"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReceiptDynamoRepository persists receipts.
//
// Table requirements:
//   - PK: user_id (string), SK: order_code (string)
//
// The composite key carries the uniqueness guarantee: CreateOnce does a
// conditional put on the sort key, so webhook redelivery cannot write a
// second receipt.

type ReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *ReceiptDynamoRepository) CreateOnce(ctx context.Context, rec entities.Receipt) error {
	av, err := attributevalue.MarshalMap(receiptItem{
		UserID:    rec.UserID,
		OrderCode: rec.OrderCode,
		Text:      rec.Text,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrReceiptExists
		}
		return err
	}
	return nil
}

func (r *ReceiptDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Receipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Receipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it receiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		items = append(items, entities.Receipt{
			UserID:    it.UserID,
			OrderCode: it.OrderCode,
			Text:      it.Text,
			CreatedAt: createdAt,
		})
	}
	return items, nil
}

func (r *ReceiptDynamoRepository) Delete(ctx context.Context, userID, orderCode string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id":    &types.AttributeValueMemberS{Value: userID},
			"order_code": &types.AttributeValueMemberS{Value: orderCode},
		},
	})
	return err
}
