package repository

import (
	"context"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
)

const ordersHashKey = "id"

type orderItem struct {
	ID                  string `dynamodbav:"id"`
	CustomerName        string `dynamodbav:"customer_name"`
	PhoneNumber         string `dynamodbav:"phone_number"`
	Weight              string `dynamodbav:"weight"`
	ServiceType         string `dynamodbav:"service_type"`
	TotalPrice          string `dynamodbav:"total_price"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
	EstimatedCompletion string `dynamodbav:"estimated_completion"`
	WaMessageID         string `dynamodbav:"wa_message_id,omitempty"`
	WaStatus            string `dynamodbav:"wa_status,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Money and weight are stored as decimal strings so no precision is lost.
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := putItem(ctx, r.ddb, r.tableName, ordersHashKey, toOrderItem(o), true); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// Save overwrites the full record.
func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := putItem(ctx, r.ddb, r.tableName, ordersHashKey, toOrderItem(o), false); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := getItem(ctx, r.ddb, r.tableName, ordersHashKey, id, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll[orderItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                  o.ID,
		CustomerName:        o.CustomerName,
		PhoneNumber:         o.PhoneNumber,
		Weight:              o.Weight.String(),
		ServiceType:         string(o.ServiceType),
		TotalPrice:          o.TotalPrice.String(),
		Status:              string(o.Status),
		CreatedAt:           formatTime(o.CreatedAt),
		EstimatedCompletion: formatTime(o.EstimatedCompletion),
		WaMessageID:         o.WaMessageID,
		WaStatus:            string(o.WaStatus),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                  it.ID,
		CustomerName:        it.CustomerName,
		PhoneNumber:         it.PhoneNumber,
		Weight:              parseDecimal(it.Weight),
		ServiceType:         entities.ServiceType(it.ServiceType),
		TotalPrice:          parseDecimal(it.TotalPrice),
		Status:              entities.OrderStatus(it.Status),
		CreatedAt:           parseTime(it.CreatedAt),
		EstimatedCompletion: parseTime(it.EstimatedCompletion),
		WaMessageID:         it.WaMessageID,
		WaStatus:            entities.WaStatus(it.WaStatus),
	}
}
