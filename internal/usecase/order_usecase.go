package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidCustomerName     = errors.New("invalid customer name")
	ErrInvalidWeight           = errors.New("invalid weight")
	ErrInvalidServiceType      = errors.New("invalid service type")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

const (
	orderIDLength   = 6
	orderIDAttempts = 5
)

// orderIDSpace is 36^orderIDLength.
const orderIDSpace = 36 * 36 * 36 * 36 * 36 * 36

// OrderNotification is an order together with the outcome of the WhatsApp
// notification its last change triggered, if any.
type OrderNotification struct {
	Order        entities.Order
	Notification *DispatchResult
}

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

// IOrderUseCase owns the order lifecycle:
//   - intake => CreateOrder()
//   - status buttons (process / complete / pick up) => Transition()
//   - WhatsApp delivery refresh => RefreshNotificationStatus()
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, customerName, phoneNumber string, weight decimal.Decimal, serviceType entities.ServiceType) (entities.Order, error)
	Transition(ctx context.Context, orderID string, newStatus entities.OrderStatus) (OrderNotification, error)
	RefreshNotificationStatus(ctx context.Context, orderID string) (OrderNotification, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

// IntegrationConfigProvider resolves the gateway configuration at call time.
type IntegrationConfigProvider interface {
	GetIntegrationConfig(ctx context.Context) (entities.IntegrationConfig, error)
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	settings   IntegrationConfigProvider
	dispatcher INotificationDispatcher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, settings IntegrationConfigProvider, dispatcher INotificationDispatcher) *OrderUseCase {
	return &OrderUseCase{repo: repo, settings: settings, dispatcher: dispatcher}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, customerName, phoneNumber string, weight decimal.Decimal, serviceType entities.ServiceType) (entities.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return entities.Order{}, ErrInvalidCustomerName
	}
	if !weight.IsPositive() {
		return entities.Order{}, ErrInvalidWeight
	}
	pricing, ok := entities.PricingFor(serviceType)
	if !ok {
		return entities.Order{}, ErrInvalidServiceType
	}

	now := time.Now().UTC()
	o := entities.Order{
		CustomerName:        customerName,
		PhoneNumber:         strings.TrimSpace(phoneNumber),
		Weight:              weight,
		ServiceType:         serviceType,
		TotalPrice:          pricing.Quote(weight),
		Status:              entities.OrderStatusPending,
		CreatedAt:           now,
		EstimatedCompletion: now.Add(pricing.Turnaround()),
	}

	created, err := u.create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	logrus.WithFields(logrus.Fields{
		"component":    "order.usecase",
		"order_id":     created.ID,
		"service_type": created.ServiceType,
		"total_price":  created.TotalPrice.String(),
	}).Info("order created")
	return created, nil
}

// create stores o under a fresh id, drawing a new one when the id is taken.
func (u *OrderUseCase) create(ctx context.Context, o entities.Order) (entities.Order, error) {
	var err error
	for attempt := 1; attempt <= orderIDAttempts; attempt++ {
		o.ID = newOrderID()
		var created entities.Order
		created, err = u.repo.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Order{}, err
		}
		logrus.WithFields(logrus.Fields{
			"component": "order.usecase",
			"order_id":  o.ID,
			"attempt":   attempt,
		}).Warn("order id already taken")
	}
	return entities.Order{}, fmt.Errorf("allocating order id: %w", err)
}

// Transition moves the order to newStatus, which must be the immediate
// successor of its current status. Entering PROCESSING or COMPLETED sends a
// WhatsApp message; its failure is reported in the result and never undoes
// the status change.
func (u *OrderUseCase) Transition(ctx context.Context, orderID string, newStatus entities.OrderStatus) (OrderNotification, error) {
	if !newStatus.Valid() {
		return OrderNotification{}, ErrInvalidOrderStatus
	}
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return OrderNotification{}, err
	}
	if !o.Status.CanTransitionTo(newStatus) {
		return OrderNotification{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, newStatus)
	}

	log := logrus.WithFields(logrus.Fields{
		"component": "order.usecase",
		"order_id":  o.ID,
		"from":      o.Status,
		"to":        newStatus,
	})

	o.Status = newStatus
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		log.WithError(err).Error("persisting status change failed")
		return OrderNotification{}, err
	}
	log.Info("order status changed")

	if !newStatus.Notifies() {
		return OrderNotification{Order: saved}, nil
	}

	res := u.dispatch(ctx, saved, newStatus)
	return u.applyDispatch(ctx, saved, res), nil
}

func (u *OrderUseCase) dispatch(ctx context.Context, o entities.Order, status entities.OrderStatus) DispatchResult {
	cfg, err := u.settings.GetIntegrationConfig(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{"component": "order.usecase", "order_id": o.ID}).
			WithError(err).Warn("loading integration settings failed")
		return DispatchResult{Outcome: DispatchFailed, Detail: "could not load WhatsApp settings", Err: err}
	}
	return u.dispatcher.Dispatch(ctx, o, status, cfg)
}

// applyDispatch records the gateway outcome on the order. A failed write here
// is logged only: the status change has already been committed.
func (u *OrderUseCase) applyDispatch(ctx context.Context, o entities.Order, res DispatchResult) OrderNotification {
	updated := o
	switch res.Outcome {
	case DispatchSent:
		updated.WaMessageID = res.MessageID
		updated.WaStatus = entities.WaStatusPending
	case DispatchFailed:
		if res.WaStatus != entities.WaStatusFailed {
			return OrderNotification{Order: o, Notification: &res}
		}
		// The previous message id would make a refresh report its state.
		updated.WaMessageID = ""
		updated.WaStatus = entities.WaStatusFailed
	default:
		return OrderNotification{Order: o, Notification: &res}
	}

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		logrus.WithFields(logrus.Fields{"component": "order.usecase", "order_id": o.ID}).
			WithError(err).Error("persisting whatsapp status failed")
		return OrderNotification{Order: o, Notification: &res}
	}
	return OrderNotification{Order: saved, Notification: &res}
}

// RefreshNotificationStatus asks the gateway for the delivery state of the
// order's last message. It is a no-op when the integration is off or no
// message was sent yet.
func (u *OrderUseCase) RefreshNotificationStatus(ctx context.Context, orderID string) (OrderNotification, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return OrderNotification{}, err
	}
	cfg, err := u.settings.GetIntegrationConfig(ctx)
	if err != nil {
		return OrderNotification{}, err
	}

	res := u.dispatcher.QueryStatus(ctx, o, cfg)
	if res.Outcome != DispatchRefreshed || res.WaStatus == o.WaStatus {
		return OrderNotification{Order: o, Notification: &res}, nil
	}

	o.WaStatus = res.WaStatus
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return OrderNotification{}, err
	}
	return OrderNotification{Order: saved, Notification: &res}, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimPrefix(strings.TrimSpace(orderID), "#")
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// newOrderID returns a short upper-case base36 code that fits on a receipt.
func newOrderID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % orderIDSpace
	id := strings.ToUpper(strconv.FormatUint(n, 36))
	return strings.Repeat("0", orderIDLength-len(id)) + id
}
