package request

import (
	"errors"
	"strings"

	"smart_laundry/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrUnknownOrderStatus = errors.New("unknown order status")
)

// CreateOrderRequest is the intake form payload. Weight accepts a JSON number
// or a decimal string.
type CreateOrderRequest struct {
	CustomerName string          `json:"customer_name" binding:"required"`
	PhoneNumber  string          `json:"phone_number"`
	Weight       decimal.Decimal `json:"weight"`
	ServiceType  string          `json:"service_type" binding:"required"`
}

// ResolveServiceType accepts the wire value ("wash-iron") or the label
// shown on the intake form ("Cuci Setrika").
func (r CreateOrderRequest) ResolveServiceType() (entities.ServiceType, error) {
	st, ok := entities.ParseServiceType(r.ServiceType)
	if !ok {
		return "", ErrUnknownServiceType
	}
	return st, nil
}

type TransitionOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TransitionOrderRequest) ResolveStatus() (entities.OrderStatus, error) {
	st, ok := entities.ParseOrderStatus(r.Status)
	if !ok {
		return "", ErrUnknownOrderStatus
	}
	return st, nil
}

// ResolveOrderID strips the "#" prefix printed on receipts.
func ResolveOrderID(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "#")
}
