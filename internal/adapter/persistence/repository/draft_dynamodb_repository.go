package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDraftsTableName = "drafts"
	draftsUserIndex        = "user_id-index"
)

type draftItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	FormDataRaw     string `dynamodbav:"form_data_raw,omitempty"`
	QuoteRaw        string `dynamodbav:"quote_raw,omitempty"`
	DocCount        int    `dynamodbav:"doc_count"`
	DraftSource     string `dynamodbav:"draft_source"`
	NeedsExtraction bool   `dynamodbav:"needs_extraction"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// DraftDynamoRepository persists Draft metadata.
//
// Table requirements:
//   - PK: id (string), GSI user_id-index on user_id
//
// Document binaries never land here; the items stay small enough that the
// drafts list view is a single query.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Save(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	it, err := toDraftItem(d)
	if err != nil {
		return entities.Draft{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Draft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.Draft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Draft{}, err
	}
	if len(out.Item) == 0 {
		return entities.Draft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Draft{}, err
	}
	return fromDraftItem(it), nil
}

func (r *DraftDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Draft, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(draftsUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Draft, 0, len(out.Items))
	for _, raw := range out.Items {
		var it draftItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDraftItem(it))
	}
	return items, nil
}

func (r *DraftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDraftItem(d entities.Draft) (draftItem, error) {
	it := draftItem{
		ID:              d.ID,
		UserID:          d.UserID,
		DocCount:        d.DocCount,
		DraftSource:     string(d.DraftSource),
		NeedsExtraction: d.NeedsExtraction,
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.FormData != nil {
		raw, err := json.Marshal(d.FormData)
		if err != nil {
			return draftItem{}, err
		}
		it.FormDataRaw = string(raw)
	}
	if d.Quote != nil {
		raw, err := json.Marshal(d.Quote)
		if err != nil {
			return draftItem{}, err
		}
		it.QuoteRaw = string(raw)
	}
	return it, nil
}

func fromDraftItem(it draftItem) entities.Draft {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	d := entities.Draft{
		ID:              it.ID,
		UserID:          it.UserID,
		DocCount:        it.DocCount,
		DraftSource:     entities.DraftSource(it.DraftSource),
		NeedsExtraction: it.NeedsExtraction,
		CreatedAt:       createdAt,
	}
	if it.FormDataRaw != "" {
		var form entities.ShipmentForm
		if err := json.Unmarshal([]byte(it.FormDataRaw), &form); err != nil {
			log.Printf("[booking][repository] draft %s form payload unreadable: %v", it.ID, err)
		} else {
			d.FormData = &form
		}
	}
	if it.QuoteRaw != "" {
		var q entities.Quote
		if err := json.Unmarshal([]byte(it.QuoteRaw), &q); err != nil {
			log.Printf("[booking][repository] draft %s quote payload unreadable: %v", it.ID, err)
		} else {
			d.Quote = &q
		}
	}
	return d
}
