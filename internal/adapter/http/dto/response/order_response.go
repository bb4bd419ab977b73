package response

import (
	"time"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase"
)

type OrderResponse struct {
	ID                  string    `json:"id"`
	CustomerName        string    `json:"customer_name"`
	PhoneNumber         string    `json:"phone_number"`
	Weight              float64   `json:"weight"`
	ServiceType         string    `json:"service_type"`
	ServiceLabel        string    `json:"service_label"`
	TotalPrice          float64   `json:"total_price"`
	TotalPriceFormatted string    `json:"total_price_formatted"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
	WaMessageID         string    `json:"wa_message_id,omitempty"`
	WaStatus            string    `json:"wa_status,omitempty"`
}

// NotificationResponse is the transient notice produced by a WhatsApp
// dispatch or refresh.
type NotificationResponse struct {
	Outcome   string `json:"outcome"`
	Message   string `json:"message"`
	MessageID string `json:"message_id,omitempty"`
	WaStatus  string `json:"wa_status,omitempty"`
}

type OrderNotificationResponse struct {
	Order        OrderResponse         `json:"order"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	weight, _ := o.Weight.Float64()
	total, _ := o.TotalPrice.Float64()
	return OrderResponse{
		ID:                  o.ID,
		CustomerName:        o.CustomerName,
		PhoneNumber:         o.PhoneNumber,
		Weight:              weight,
		ServiceType:         string(o.ServiceType),
		ServiceLabel:        o.ServiceType.Label(),
		TotalPrice:          total,
		TotalPriceFormatted: usecase.FormatRupiah(o.TotalPrice),
		Status:              string(o.Status),
		CreatedAt:           o.CreatedAt,
		EstimatedCompletion: o.EstimatedCompletion,
		WaMessageID:         o.WaMessageID,
		WaStatus:            string(o.WaStatus),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromOrderNotification(on usecase.OrderNotification) OrderNotificationResponse {
	res := OrderNotificationResponse{Order: FromOrder(on.Order)}
	if n := on.Notification; n != nil {
		res.Notification = &NotificationResponse{
			Outcome:   string(n.Outcome),
			Message:   n.Detail,
			MessageID: n.MessageID,
			WaStatus:  string(n.WaStatus),
		}
	}
	return res
}
