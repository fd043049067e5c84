package repository

import (
	"context"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillingProfilesTableName = "billing_profiles"

type billingProfileItem struct {
	UserID             string `dynamodbav:"user_id"`
	ProviderCustomerID string `dynamodbav:"provider_customer_id,omitempty"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// BillingProfileDynamoRepository persists the per-user payment-provider
// customer memo.
//
// Table requirements:
//   - PK: user_id (string)

type BillingProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingProfileRepository = (*BillingProfileDynamoRepository)(nil)

func NewBillingProfileDynamoRepository(ddb *dynamodb.Client) *BillingProfileDynamoRepository {
	return &BillingProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_PROFILES_TABLE", defaultBillingProfilesTableName),
	}
}

func (r *BillingProfileDynamoRepository) Get(ctx context.Context, userID string) (entities.BillingProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.BillingProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingProfile{}, nil
	}

	var it billingProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingProfile{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.BillingProfile{
		UserID:             it.UserID,
		ProviderCustomerID: it.ProviderCustomerID,
		UpdatedAt:          updatedAt,
	}, nil
}

func (r *BillingProfileDynamoRepository) Upsert(ctx context.Context, p entities.BillingProfile) error {
	av, err := attributevalue.MarshalMap(billingProfileItem{
		UserID:             p.UserID,
		ProviderCustomerID: p.ProviderCustomerID,
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
