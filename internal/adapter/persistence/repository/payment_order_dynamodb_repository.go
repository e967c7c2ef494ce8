package repository

import (
	"context"
	"time"

	"invite_studio/internal/domain/entities"
	"invite_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentOrdersTableName   = "payment_orders"
	paymentOrdersCustomizationIndex = "customization_id-index"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type paymentOrderItem struct {
	ID                 string `dynamodbav:"id"`
	CustomizationID    string `dynamodbav:"customization_id"`
	AmountMinor        int64  `dynamodbav:"amount_minor"`
	Currency           string `dynamodbav:"currency"`
	Status             string `dynamodbav:"status"`
	GatewayPaymentID   string `dynamodbav:"gateway_payment_id,omitempty"`
	Mock               bool   `dynamodbav:"mock"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	GatewayResponseRaw string `dynamodbav:"gateway_response_raw,omitempty"`
}

// PaymentOrderDynamoRepository persists PaymentOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway order id)
//   - GSI: customization_id-index (PK: customization_id)
type PaymentOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderDynamoRepository)(nil)

func NewPaymentOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentOrderDynamoRepository {
	return newPaymentOrderDynamoRepository(ddb, tableName)
}

func newPaymentOrderDynamoRepository(ddb dynamoAPI, tableName string) *PaymentOrderDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentOrdersTableName
	}
	return &PaymentOrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *PaymentOrderDynamoRepository) Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	av, err := attributevalue.MarshalMap(toPaymentOrderItem(o))
	if err != nil {
		return entities.PaymentOrder{}, err
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
		return entities.PaymentOrder{}, err
	}
	return o, nil
}

func (r *PaymentOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentOrder{}, nil
	}

	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentOrder{}, err
	}
	return fromPaymentOrderItem(it), nil
}

func (r *PaymentOrderDynamoRepository) ListByCustomizationID(ctx context.Context, customizationID string) ([]entities.PaymentOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentOrdersCustomizationIndex),
		KeyConditionExpression: aws.String("customization_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customizationID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.PaymentOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromPaymentOrderItem(it))
	}
	return orders, nil
}

// MarkPaid settles an order that is created, or failed after an earlier
// declined attempt; the gateway lets the customer retry on the same order.
func (r *PaymentOrderDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string) (bool, error) {
	return r.settle(ctx, id, paymentID, entities.PaymentOrderStatusPaid, entities.PaymentOrderStatusCreated, entities.PaymentOrderStatusFailed)
}

func (r *PaymentOrderDynamoRepository) MarkFailed(ctx context.Context, id, paymentID string) (bool, error) {
	return r.settle(ctx, id, paymentID, entities.PaymentOrderStatusFailed, entities.PaymentOrderStatusCreated, entities.PaymentOrderStatusCreated)
}

// settle moves an order to status when it currently holds one of the two
// allowed source statuses. A condition failure means the order is unknown or
// already settled and is reported as false.
func (r *PaymentOrderDynamoRepository) settle(ctx context.Context, id, paymentID string, status, fromA, fromB entities.PaymentOrderStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status = :from_a OR #status = :from_b)"),
		UpdateExpression:    aws.String("SET #status = :status, #pid = :pid, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#pid":        "gateway_payment_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from_a": &types.AttributeValueMemberS{Value: string(fromA)},
			":from_b": &types.AttributeValueMemberS{Value: string(fromB)},
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":pid":    &types.AttributeValueMemberS{Value: paymentID},
			":now":    &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentOrderItem(o entities.PaymentOrder) paymentOrderItem {
	return paymentOrderItem{
		ID:                 o.ID,
		CustomizationID:    o.CustomizationID,
		AmountMinor:        o.AmountMinor,
		Currency:           o.Currency,
		Status:             string(o.Status),
		GatewayPaymentID:   o.GatewayPaymentID,
		Mock:               o.Mock,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
		GatewayResponseRaw: string(o.GatewayResponseRaw),
	}
}

func fromPaymentOrderItem(it paymentOrderItem) entities.PaymentOrder {
	return entities.PaymentOrder{
		ID:                 it.ID,
		CustomizationID:    it.CustomizationID,
		AmountMinor:        it.AmountMinor,
		Currency:           it.Currency,
		Status:             entities.PaymentOrderStatus(it.Status),
		GatewayPaymentID:   it.GatewayPaymentID,
		Mock:               it.Mock,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		GatewayResponseRaw: []byte(it.GatewayResponseRaw),
	}
}
