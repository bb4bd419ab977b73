package interfaces

import "context"

// INotificationGateway abstracts the WhatsApp messaging provider (e.g. Fonnte).
//
// The token is passed per call: the service resolves it from settings at call
// time instead of holding it in the gateway.

//go:generate mockgen -source=notification_gateway_interface.go -destination=mocks/notification_gateway_mock.go -package=mock_interfaces

type INotificationGateway interface {
	Send(ctx context.Context, token, target, message string) (providerMessageID string, err error)
	MessageStatus(ctx context.Context, token, providerMessageID string) (providerStatus string, err error)
}
