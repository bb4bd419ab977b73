package usecase

import (
	"context"
	"errors"
	"fmt"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrIntegrationDisabled      = errors.New("whatsapp integration disabled")
	ErrIntegrationNotConfigured = errors.New("whatsapp api token not configured")
	ErrUnknownMessageStatus     = errors.New("unknown message status")
	ErrNotificationGatewayUnset = errors.New("notification gateway not configured")
)

// DispatchOutcome classifies the result of a notification attempt.
type DispatchOutcome string

const (
	DispatchSent          DispatchOutcome = "sent"
	DispatchRefreshed     DispatchOutcome = "refreshed"
	DispatchNotConfigured DispatchOutcome = "not_configured"
	DispatchSkipped       DispatchOutcome = "skipped"
	DispatchFailed        DispatchOutcome = "failed"
)

// DispatchResult is what the operator sees as a transient notice after a
// status change or a delivery refresh.
type DispatchResult struct {
	Outcome   DispatchOutcome
	MessageID string
	WaStatus  entities.WaStatus
	Detail    string
	Err       error
}

func (r DispatchResult) OK() bool {
	return r.Outcome == DispatchSent || r.Outcome == DispatchRefreshed
}

// INotificationDispatcher turns order status changes into WhatsApp messages.
//
// Both methods depend only on their arguments and the gateway; persisting the
// returned message id/status is the caller's job.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, order entities.Order, status entities.OrderStatus, cfg entities.IntegrationConfig) DispatchResult
	QueryStatus(ctx context.Context, order entities.Order, cfg entities.IntegrationConfig) DispatchResult
}

type NotificationDispatcher struct {
	gateway interfaces.INotificationGateway
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(gateway interfaces.INotificationGateway) *NotificationDispatcher {
	return &NotificationDispatcher{gateway: gateway}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, order entities.Order, status entities.OrderStatus, cfg entities.IntegrationConfig) DispatchResult {
	log := logrus.WithFields(logrus.Fields{
		"component": "notification.dispatcher",
		"order_id":  order.ID,
		"status":    status,
	})

	if res, blocked := checkIntegration(cfg); blocked {
		log.WithError(res.Err).Warn("dispatch short-circuited")
		return res
	}

	text, ok := FormatMessage(order, status)
	if !ok {
		return DispatchResult{Outcome: DispatchSkipped, Detail: fmt.Sprintf("no message for status %s", status)}
	}
	if d.gateway == nil {
		return failed(ErrNotificationGatewayUnset)
	}

	target := NormalizePhone(order.PhoneNumber)
	log.WithField("target", target).Info("sending whatsapp notification")

	msgID, err := d.gateway.Send(ctx, cfg.Token, target, text)
	if err != nil {
		log.WithError(err).Warn("whatsapp notification failed")
		return failed(err)
	}

	log.WithField("message_id", msgID).Info("whatsapp notification accepted")
	return DispatchResult{
		Outcome:   DispatchSent,
		MessageID: msgID,
		WaStatus:  entities.WaStatusPending,
		Detail:    "WhatsApp notification sent",
	}
}

func (d *NotificationDispatcher) QueryStatus(ctx context.Context, order entities.Order, cfg entities.IntegrationConfig) DispatchResult {
	log := logrus.WithFields(logrus.Fields{
		"component":  "notification.dispatcher",
		"order_id":   order.ID,
		"message_id": order.WaMessageID,
	})

	if res, blocked := checkIntegration(cfg); blocked {
		return res
	}
	if strings.TrimSpace(order.WaMessageID) == "" {
		return DispatchResult{Outcome: DispatchSkipped, WaStatus: order.WaStatus, Detail: "no whatsapp message recorded for this order"}
	}
	if d.gateway == nil {
		return failed(ErrNotificationGatewayUnset)
	}

	raw, err := d.gateway.MessageStatus(ctx, cfg.Token, order.WaMessageID)
	if err != nil {
		log.WithError(err).Warn("message status query failed")
		return failed(err)
	}

	st, ok := entities.ParseWaStatus(raw)
	if !ok {
		log.WithField("provider_status", raw).Warn("unmapped provider status")
		return failed(fmt.Errorf("%w: %q", ErrUnknownMessageStatus, raw))
	}

	log.WithField("wa_status", st).Info("message status refreshed")
	return DispatchResult{
		Outcome:   DispatchRefreshed,
		MessageID: order.WaMessageID,
		WaStatus:  st,
		Detail:    fmt.Sprintf("WhatsApp status: %s", st),
	}
}

func checkIntegration(cfg entities.IntegrationConfig) (DispatchResult, bool) {
	if !cfg.Enabled {
		return DispatchResult{Outcome: DispatchNotConfigured, Detail: "WhatsApp integration is disabled", Err: ErrIntegrationDisabled}, true
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return DispatchResult{Outcome: DispatchNotConfigured, Detail: "Fonnte API token is not set", Err: ErrIntegrationNotConfigured}, true
	}
	return DispatchResult{}, false
}

func failed(err error) DispatchResult {
	return DispatchResult{
		Outcome:  DispatchFailed,
		WaStatus: entities.WaStatusFailed,
		Detail:   fmt.Sprintf("WhatsApp gateway error: %v", err),
		Err:      err,
	}
}

// FormatMessage renders the customer message for entering status.
// Only PROCESSING and COMPLETED have a template.
func FormatMessage(order entities.Order, status entities.OrderStatus) (string, bool) {
	total := FormatRupiah(order.TotalPrice)
	switch status {
	case entities.OrderStatusProcessing:
		return fmt.Sprintf("*Smart Laundry Pro*\n\nHalo %s,\n\nPesanan Anda *#%s* sedang *DIPROSES*.\nLayanan: %s\nTotal: %s\n\nTerima kasih!",
			order.CustomerName, order.ID, order.ServiceType.Label(), total), true
	case entities.OrderStatusCompleted:
		return fmt.Sprintf("*Smart Laundry Pro*\n\nHalo %s,\n\nKabar baik! Pesanan Anda *#%s* sudah *SELESAI* dan siap diambil.\n\nTotal Bayar: *%s*",
			order.CustomerName, order.ID, total), true
	}
	return "", false
}

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah formats amount in whole rupiah with Indonesian digit grouping,
// e.g. "Rp 50.000".
func FormatRupiah(amount decimal.Decimal) string {
	return "Rp " + idPrinter.Sprintf("%d", amount.Round(0).IntPart())
}

// NormalizePhone strips non-digits and rewrites a leading 0 to the 62 country code.
func NormalizePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if strings.HasPrefix(digits, "0") {
		return "62" + digits[1:]
	}
	return digits
}
