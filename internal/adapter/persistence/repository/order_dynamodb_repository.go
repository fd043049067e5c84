package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName      = "orders"
	defaultOrderEventsTableName = "order_events"
	ordersCodeIndex             = "order_code-index"
	ordersUserIndex             = "user_id-index"
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	OrderCode         string `dynamodbav:"order_code"`
	UserID            string `dynamodbav:"user_id"`
	CustomerName      string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail     string `dynamodbav:"customer_email,omitempty"`
	RouteArea         string `dynamodbav:"route_area,omitempty"`
	ServiceType       string `dynamodbav:"service_type"`
	VehicleType       string `dynamodbav:"vehicle_type"`
	PriceBeforeTax    string `dynamodbav:"price_before_tax"`
	Currency          string `dynamodbav:"currency"`
	Status            string `dynamodbav:"status"`
	PaymentStatus     string `dynamodbav:"payment_status"`
	CheckoutSessionID string `dynamodbav:"checkout_session_id,omitempty"`
	PaymentIntentID   string `dynamodbav:"payment_intent_id,omitempty"`
	FormDataRaw       string `dynamodbav:"form_data_raw,omitempty"`
	DocumentsRaw      string `dynamodbav:"documents_raw,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type orderEventItem struct {
	OrderID string `dynamodbav:"order_id"`
	Seq     int    `dynamodbav:"seq"`
	Status  string `dynamodbav:"status"`
	Note    string `dynamodbav:"note,omitempty"`
	At      string `dynamodbav:"at"`
}

// OrderDynamoRepository persists Order entities and their status events.
//
// Table requirements:
//   - orders: PK id (string), GSI order_code-index on order_code,
//     GSI user_id-index on user_id
//   - order_events: PK order_id (string), SK seq (number)
//
// The events table is append-only. seq preserves insertion order so the
// tracking timeline can replay without comparing timestamps.

type OrderDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	eventsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		eventsTable: getenvDefault("ORDER_EVENTS_TABLE", defaultOrderEventsTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByOrderCode(ctx context.Context, orderCode string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCodeIndex),
		KeyConditionExpression: aws.String("order_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: orderCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	// The GSI projection may be partial. Re-read by PK for the full row.
	return r.GetByID(ctx, it.ID)
}

func (r *OrderDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalOrders(out.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePayment(ctx context.Context, id string, payment entities.PaymentStatus, checkoutSessionID, paymentIntentID string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #checkout_session_id = :checkout_session_id, #payment_intent_id = :payment_intent_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status":      &types.AttributeValueMemberS{Value: string(payment)},
			":checkout_session_id": &types.AttributeValueMemberS{Value: checkoutSessionID},
			":payment_intent_id":   &types.AttributeValueMemberS{Value: paymentIntentID},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status":      "payment_status",
			"#checkout_session_id": "checkout_session_id",
			"#payment_intent_id":   "payment_intent_id",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

const appendEventAttempts = 3

func (r *OrderDynamoRepository) AppendEvent(ctx context.Context, orderID string, event entities.StatusEvent) error {
	for attempt := 0; attempt < appendEventAttempts; attempt++ {
		seq, err := r.nextEventSeq(ctx, orderID)
		if err != nil {
			return err
		}

		it := orderEventItem{
			OrderID: orderID,
			Seq:     seq,
			Status:  string(event.Status),
			Note:    event.Note,
			At:      event.At.UTC().Format(time.RFC3339Nano),
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.eventsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(order_id)"),
		})
		if err == nil {
			return nil
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return err
		}
		// Concurrent append took this seq; recount and retry.
	}
	return errors.New("order event append contention")
}

func (r *OrderDynamoRepository) nextEventSeq(ctx context.Context, orderID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.eventsTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Select:           types.SelectCount,
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *OrderDynamoRepository) ListEvents(ctx context.Context, orderID string) ([]entities.StatusEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.eventsTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.StatusEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		at, _ := time.Parse(time.RFC3339Nano, it.At)
		events = append(events, entities.StatusEvent{
			Status: entities.OrderStatus(it.Status),
			Note:   it.Note,
			At:     at,
		})
	}
	return events, nil
}

func unmarshalOrders(raws []map[string]types.AttributeValue) ([]entities.Order, error) {
	items := make([]entities.Order, 0, len(raws))
	for _, raw := range raws {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func toOrderItem(o entities.Order) (orderItem, error) {
	it := orderItem{
		ID:                o.ID,
		OrderCode:         o.OrderCode,
		UserID:            o.UserID,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		RouteArea:         o.RouteArea,
		ServiceType:       string(o.ServiceType),
		VehicleType:       string(o.VehicleType),
		PriceBeforeTax:    floatToString(o.PriceBeforeTax),
		Currency:          o.Currency,
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		CheckoutSessionID: o.CheckoutSessionID,
		PaymentIntentID:   o.PaymentIntentID,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.FormData != nil {
		raw, err := json.Marshal(o.FormData)
		if err != nil {
			return orderItem{}, err
		}
		it.FormDataRaw = string(raw)
	}
	if len(o.Documents) > 0 {
		raw, err := json.Marshal(o.Documents)
		if err != nil {
			return orderItem{}, err
		}
		it.DocumentsRaw = string(raw)
	}
	return it, nil
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.PriceBeforeTax, 64)

	o := entities.Order{
		ID:                it.ID,
		OrderCode:         it.OrderCode,
		UserID:            it.UserID,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		RouteArea:         it.RouteArea,
		ServiceType:       entities.ServiceType(it.ServiceType),
		VehicleType:       entities.VehicleType(it.VehicleType),
		PriceBeforeTax:    price,
		Currency:          it.Currency,
		Status:            entities.OrderStatus(it.Status),
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		CheckoutSessionID: it.CheckoutSessionID,
		PaymentIntentID:   it.PaymentIntentID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.FormDataRaw != "" {
		var form entities.ShipmentForm
		if err := json.Unmarshal([]byte(it.FormDataRaw), &form); err != nil {
			log.Printf("[booking][repository] order %s form payload unreadable: %v", it.ID, err)
		} else {
			o.FormData = &form
		}
	}
	if it.DocumentsRaw != "" {
		var docs []entities.OrderDocument
		if err := json.Unmarshal([]byte(it.DocumentsRaw), &docs); err != nil {
			log.Printf("[booking][repository] order %s document manifest unreadable: %v", it.ID, err)
		} else {
			o.Documents = docs
		}
	}
	return o
}
