package repository

import (
	"context"
	"strconv"

	"easydrive_booking/internal/domain/pricing"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingOverridesTableName = "pricing_overrides"

type pricingOverrideItem struct {
	Region string `dynamodbav:"region"`
	Price  string `dynamodbav:"price"`
}

// PricingOverrideDynamoRepository persists per-region price overrides.
//
// Table requirements:
//   - PK: region (string)
//
// The table is tiny (at most one row per pricing region), so Load scans it
// whole on every quote.

type PricingOverrideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingOverrideRepository = (*PricingOverrideDynamoRepository)(nil)

func NewPricingOverrideDynamoRepository(ddb *dynamodb.Client) *PricingOverrideDynamoRepository {
	return &PricingOverrideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_OVERRIDES_TABLE", defaultPricingOverridesTableName),
	}
}

func (r *PricingOverrideDynamoRepository) Load(ctx context.Context) (pricing.Overrides, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	ov := make(pricing.Overrides, len(out.Items))
	for _, raw := range out.Items {
		var it pricingOverrideItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		price, err := strconv.ParseFloat(it.Price, 64)
		if err != nil || price <= 0 {
			continue
		}
		ov[it.Region] = price
	}
	return ov, nil
}

func (r *PricingOverrideDynamoRepository) Set(ctx context.Context, region string, price float64) error {
	av, err := attributevalue.MarshalMap(pricingOverrideItem{
		Region: region,
		Price:  floatToString(price),
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

func (r *PricingOverrideDynamoRepository) Clear(ctx context.Context, region string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"region": &types.AttributeValueMemberS{Value: region},
		},
	})
	return err
}
