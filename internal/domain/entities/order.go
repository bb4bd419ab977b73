package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the position of a laundry order in its lifecycle.
//
// The lifecycle only moves forward:
//
//	PENDING -> PROCESSING -> COMPLETED -> PICKED_UP
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusPickedUp   OrderStatus = "PICKED_UP"
)

var orderStatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusPickedUp,
}

// OrderStatuses returns the lifecycle in order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusSequence))
	copy(out, orderStatusSequence)
	return out
}

// Rank is the zero-based position of s in the lifecycle, or -1 when s is unknown.
func (s OrderStatus) Rank() int {
	for i, v := range orderStatusSequence {
		if v == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool {
	return s.Rank() >= 0
}

// Next returns the successor of s. PICKED_UP is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	r := s.Rank()
	if r < 0 || r == len(orderStatusSequence)-1 {
		return "", false
	}
	return orderStatusSequence[r+1], true
}

// CanTransitionTo reports whether next is the immediate successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	n, ok := s.Next()
	return ok && n == next
}

// IsActive reports whether the order still occupies the shop floor.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// Notifies reports whether entering s sends a WhatsApp message to the customer.
func (s OrderStatus) Notifies() bool {
	return s == OrderStatusProcessing || s == OrderStatusCompleted
}

// ParseOrderStatus accepts the status name in any case.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// WaStatus mirrors the delivery state reported by the WhatsApp gateway.
type WaStatus string

const (
	WaStatusPending   WaStatus = "pending"
	WaStatusSent      WaStatus = "sent"
	WaStatusDelivered WaStatus = "delivered"
	WaStatusRead      WaStatus = "read"
	WaStatusFailed    WaStatus = "failed"
)

// ParseWaStatus maps a gateway status string (case-insensitive) onto WaStatus.
func ParseWaStatus(raw string) (WaStatus, bool) {
	switch s := WaStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case WaStatusPending, WaStatusSent, WaStatusDelivered, WaStatusRead, WaStatusFailed:
		return s, true
	}
	return "", false
}

// Order is a customer's laundry drop-off.
//
// Storage model (DynamoDB):
//   - table: orders
//   - PK: id
//
// TotalPrice and EstimatedCompletion are fixed at creation and never recomputed.
// PhoneNumber is stored as typed by the operator.
type Order struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customer_name"`
	PhoneNumber         string          `json:"phone_number"`
	Weight              decimal.Decimal `json:"weight"`
	ServiceType         ServiceType     `json:"service_type"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	Status              OrderStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	EstimatedCompletion time.Time       `json:"estimated_completion"`

	WaMessageID string   `json:"wa_message_id,omitempty"`
	WaStatus    WaStatus `json:"wa_status,omitempty"`
}
