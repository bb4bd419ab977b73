package interfaces

import (
	"context"
	"smart_laundry/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Create refuses to overwrite an existing id. The store has no partial-update
// primitive: Save always writes the full record.
// GetByID returns a zero Order (empty ID) when the key is unknown.

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
