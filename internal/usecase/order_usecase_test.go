package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	mock_interfaces "smart_laundry/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type orderDeps struct {
	repo     *mock_interfaces.MockIOrderRepository
	settings *mock_interfaces.MockISettingsRepository
	gateway  *mock_interfaces.MockINotificationGateway
	uc       *OrderUseCase
}

func newOrderDeps(ctrl *gomock.Controller) orderDeps {
	d := orderDeps{
		repo:     mock_interfaces.NewMockIOrderRepository(ctrl),
		settings: mock_interfaces.NewMockISettingsRepository(ctrl),
		gateway:  mock_interfaces.NewMockINotificationGateway(ctrl),
	}
	d.uc = NewOrderUseCase(d.repo, NewSettingsUseCase(d.settings, IntegrationDefaults{}), NewNotificationDispatcher(d.gateway))
	return d
}

func expectIntegration(repo *mock_interfaces.MockISettingsRepository, token string, enabled bool) {
	repo.EXPECT().Get(gomock.Any(), entities.SettingKeyFonnteToken).
		Return(entities.Setting{Key: entities.SettingKeyFonnteToken, Value: token}, true, nil)
	repo.EXPECT().Get(gomock.Any(), entities.SettingKeyWAEnabled).
		Return(entities.Setting{Key: entities.SettingKeyWAEnabled, Value: strconv.FormatBool(enabled)}, true, nil)
}

func echoOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	return o, nil
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid customer name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "   ", "0812", decimal.NewFromInt(1), entities.ServiceWashFold)
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("invalid weight", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		for _, w := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2)} {
			_, err := uc.CreateOrder(context.Background(), "Budi", "0812", w, entities.ServiceWashFold)
			if !errors.Is(err, ErrInvalidWeight) {
				t.Fatalf("weight %s: expected ErrInvalidWeight, got %v", w, err)
			}
		}
	})

	t.Run("invalid service type", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "Budi", "0812", decimal.NewFromInt(1), entities.ServiceType("steam"))
		if !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := d.uc.CreateOrder(context.Background(), "Budi", "0812", decimal.NewFromInt(1), entities.ServiceWashFold)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	for _, p := range entities.PricingTable() {
		p := p
		t.Run("pricing "+string(p.ServiceType), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newOrderDeps(ctrl)
			weight := decimal.RequireFromString("3.5")

			d.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(echoOrder)

			o, err := d.uc.CreateOrder(context.Background(), " Siti ", " 0812 ", weight, p.ServiceType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !o.TotalPrice.Equal(p.UnitPrice.Mul(weight)) {
				t.Fatalf("expected total %s got %s", p.UnitPrice.Mul(weight), o.TotalPrice)
			}
			if !o.EstimatedCompletion.Equal(o.CreatedAt.Add(time.Duration(p.TurnaroundHours) * time.Hour)) {
				t.Fatalf("unexpected estimated completion %s for created %s", o.EstimatedCompletion, o.CreatedAt)
			}
			if o.Status != entities.OrderStatusPending || len(o.ID) != orderIDLength {
				t.Fatalf("unexpected order: %+v", o)
			}
			if o.CustomerName != "Siti" || o.PhoneNumber != "0812" {
				t.Fatalf("expected trimmed identity fields: %+v", o)
			}
			if o.WaMessageID != "" || o.WaStatus != "" {
				t.Fatalf("new orders have no whatsapp state: %+v", o)
			}
		})
	}

	t.Run("wash-iron 5kg", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		o, err := d.uc.CreateOrder(context.Background(), "Budi", "081234567890", decimal.NewFromInt(5), entities.ServiceWashIron)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.TotalPrice.Equal(decimal.NewFromInt(50000)) {
			t.Fatalf("expected 50000 got %s", o.TotalPrice)
		}
		if o.PhoneNumber != "081234567890" {
			t.Fatalf("phone must be stored as typed, got %s", o.PhoneNumber)
		}
	})
}

func TestOrderUseCase_Transition(t *testing.T) {
	pending := entities.Order{
		ID:           "ABC123",
		CustomerName: "Budi",
		PhoneNumber:  "081234567890",
		Weight:       decimal.NewFromInt(5),
		ServiceType:  entities.ServiceWashIron,
		TotalPrice:   decimal.NewFromInt(50000),
		Status:       entities.OrderStatusPending,
	}

	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.Transition(context.Background(), "ABC123", entities.OrderStatus("LOST"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.Transition(context.Background(), "  ", entities.OrderStatusProcessing)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "NOPE01").Return(entities.Order{}, nil)

		_, err := d.uc.Transition(context.Background(), "NOPE01", entities.OrderStatusProcessing)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(entities.Order{}, errors.New("db"))

		_, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("rejects skipping and reverting", func(t *testing.T) {
		cases := []struct {
			from, to entities.OrderStatus
		}{
			{entities.OrderStatusPending, entities.OrderStatusCompleted},
			{entities.OrderStatusPending, entities.OrderStatusPickedUp},
			{entities.OrderStatusPending, entities.OrderStatusPending},
			{entities.OrderStatusProcessing, entities.OrderStatusPending},
			{entities.OrderStatusCompleted, entities.OrderStatusProcessing},
			{entities.OrderStatusPickedUp, entities.OrderStatusCompleted},
		}
		for _, tc := range cases {
			t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				d := newOrderDeps(ctrl)
				current := pending
				current.Status = tc.from
				d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(current, nil)

				_, err := d.uc.Transition(context.Background(), "ABC123", tc.to)
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
				}
			})
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(pending, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("picked up does not notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		completed := pending
		completed.Status = entities.OrderStatusCompleted
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(completed, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		res, err := d.uc.Transition(context.Background(), "#ABC123", entities.OrderStatusPickedUp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusPickedUp || res.Notification != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("processing sends whatsapp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(pending, nil)
		expectIntegration(d.settings, "tok", true)

		var saved []entities.Order
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				saved = append(saved, o)
				return o, nil
			},
		)
		d.gateway.EXPECT().Send(gomock.Any(), "tok", "6281234567890", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, message string) (string, error) {
				if !strings.Contains(message, "#ABC123") || !strings.Contains(message, "Rp 50.000") {
					t.Fatalf("unexpected message: %q", message)
				}
				return "MSG1", nil
			},
		)

		res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusProcessing {
			t.Fatalf("unexpected status: %s", res.Order.Status)
		}
		if res.Order.WaMessageID != "MSG1" || res.Order.WaStatus != entities.WaStatusPending {
			t.Fatalf("unexpected whatsapp state: %+v", res.Order)
		}
		if res.Notification == nil || res.Notification.Outcome != DispatchSent {
			t.Fatalf("unexpected notification: %+v", res.Notification)
		}
		if len(saved) != 2 || saved[0].WaMessageID != "" || saved[1].WaMessageID != "MSG1" {
			t.Fatalf("expected status write then whatsapp write, got %+v", saved)
		}
		if saved[0].PhoneNumber != "081234567890" || saved[1].PhoneNumber != "081234567890" {
			t.Fatalf("normalized phone must not be persisted: %+v", saved)
		}
	})

	t.Run("disabled integration still transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(pending, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
		expectIntegration(d.settings, "tok", false)

		res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusProcessing || res.Order.WaStatus != "" {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		if res.Notification == nil || res.Notification.Outcome != DispatchNotConfigured {
			t.Fatalf("unexpected notification: %+v", res.Notification)
		}
	})

	t.Run("gateway failure marks message failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		processing := pending
		processing.Status = entities.OrderStatusProcessing
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(processing, nil)
		expectIntegration(d.settings, "tok", true)
		d.gateway.EXPECT().Send(gomock.Any(), "tok", gomock.Any(), gomock.Any()).Return("", errors.New("invalid token"))

		gomock.InOrder(
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder),
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) {
					if o.WaStatus != entities.WaStatusFailed || o.Status != entities.OrderStatusCompleted {
						t.Fatalf("unexpected second write: %+v", o)
					}
					return o, nil
				},
			),
		)

		res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusCompleted || res.Order.WaStatus != entities.WaStatusFailed {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		if res.Notification == nil || res.Notification.Outcome != DispatchFailed {
			t.Fatalf("unexpected notification: %+v", res.Notification)
		}
	})

	t.Run("settings failure is reported not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(pending, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
		d.settings.EXPECT().Get(gomock.Any(), entities.SettingKeyFonnteToken).Return(entities.Setting{}, false, errors.New("db"))

		res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notification == nil || res.Notification.Outcome != DispatchFailed || res.Order.WaStatus != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("whatsapp write failure keeps transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(pending, nil)
		expectIntegration(d.settings, "tok", true)
		d.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("MSG1", nil)
		gomock.InOrder(
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder),
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db")),
		)

		res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusProcessing || res.Order.WaMessageID != "" {
			t.Fatalf("expected last persisted order, got %+v", res.Order)
		}
	})
}

func TestOrderUseCase_RefreshNotificationStatus(t *testing.T) {
	sent := entities.Order{ID: "ABC123", Status: entities.OrderStatusProcessing, WaMessageID: "MSG1", WaStatus: entities.WaStatusPending}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(entities.Order{}, nil)

		_, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(sent, nil)
		expectIntegration(d.settings, "tok", true)
		d.gateway.EXPECT().MessageStatus(gomock.Any(), "tok", "MSG1").Return("READ", nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		res, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.WaStatus != entities.WaStatusRead {
			t.Fatalf("expected read, got %s", res.Order.WaStatus)
		}
		if res.Notification == nil || !res.Notification.OK() {
			t.Fatalf("unexpected notification: %+v", res.Notification)
		}
	})

	t.Run("unchanged status is not rewritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(sent, nil)
		expectIntegration(d.settings, "tok", true)
		d.gateway.EXPECT().MessageStatus(gomock.Any(), "tok", "MSG1").Return("pending", nil)

		res, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.WaStatus != entities.WaStatusPending {
			t.Fatalf("unexpected status %s", res.Order.WaStatus)
		}
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(sent, nil)
		expectIntegration(d.settings, "tok", false)

		res, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notification.Outcome != DispatchNotConfigured || res.Order.WaStatus != entities.WaStatusPending {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no message yet is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(entities.Order{ID: "ABC123", Status: entities.OrderStatusPending}, nil)
		expectIntegration(d.settings, "tok", true)

		res, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notification.Outcome != DispatchSkipped {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(sent, nil)
		expectIntegration(d.settings, "tok", true)
		d.gateway.EXPECT().MessageStatus(gomock.Any(), "tok", "MSG1").Return("delivered", nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newOrderDeps(ctrl)
	now := time.Now().UTC()
	d.repo.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{ID: "OLD001", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "NEW001", CreatedAt: now},
		{ID: "MID001", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	orders, err := d.uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders[0].ID != "NEW001" || orders[1].ID != "MID001" || orders[2].ID != "OLD001" {
		t.Fatalf("expected newest first, got %+v", orders)
	}
}

func TestNewOrderID(t *testing.T) {
	seen := make(map[string]bool)
	var letters bool
	for i := 0; i < 2000; i++ {
		id := newOrderID()
		if len(id) != orderIDLength {
			t.Fatalf("unexpected length for %q", id)
		}
		for _, c := range id {
			switch {
			case c >= '0' && c <= '9':
			case c >= 'A' && c <= 'Z':
				if c > 'F' {
					letters = true
				}
			default:
				t.Fatalf("unexpected character %q in %q", c, id)
			}
		}
		seen[id] = true
	}
	if !letters {
		t.Fatalf("expected letters beyond hex digits")
	}
	if len(seen) < 1990 {
		t.Fatalf("too many repeated ids: %d distinct of 2000", len(seen))
	}
}

func TestOrderUseCase_CreateOrderIDCollision(t *testing.T) {
	t.Run("retries with a new id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)

		var ids []string
		gomock.InOrder(
			d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) {
					ids = append(ids, o.ID)
					return entities.Order{}, fmt.Errorf("%w: orders", interfaces.ErrDuplicateKey)
				},
			),
			d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, o entities.Order) (entities.Order, error) {
					ids = append(ids, o.ID)
					return echoOrder(ctx, o)
				},
			),
		)

		o, err := d.uc.CreateOrder(context.Background(), "Budi", "081234567890", decimal.NewFromInt(5), entities.ServiceWashIron)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || o.ID != ids[1] {
			t.Fatalf("expected the second id to be used, ids=%v order=%s", ids, o.ID)
		}
		if !o.TotalPrice.Equal(decimal.NewFromInt(50000)) || o.Status != entities.OrderStatusPending {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(orderIDAttempts).
			Return(entities.Order{}, interfaces.ErrDuplicateKey)

		_, err := d.uc.CreateOrder(context.Background(), "Budi", "", decimal.NewFromInt(1), entities.ServiceWashFold)
		if !errors.Is(err, interfaces.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("other store errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newOrderDeps(ctrl)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		if _, err := d.uc.CreateOrder(context.Background(), "Budi", "", decimal.NewFromInt(1), entities.ServiceWashFold); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrderUseCase_FailedDispatchThenRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newOrderDeps(ctrl)

	processing := entities.Order{
		ID:           "ABC123",
		CustomerName: "Budi",
		PhoneNumber:  "081234567890",
		Weight:       decimal.NewFromInt(5),
		ServiceType:  entities.ServiceWashIron,
		TotalPrice:   decimal.NewFromInt(50000),
		Status:       entities.OrderStatusProcessing,
		WaMessageID:  "MSG1",
		WaStatus:     entities.WaStatusRead,
	}

	var stored entities.Order
	d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(processing, nil)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return o, nil
		},
	)
	expectIntegration(d.settings, "tok", true)
	d.gateway.EXPECT().Send(gomock.Any(), "tok", gomock.Any(), gomock.Any()).Return("", errors.New("device disconnected"))

	res, err := d.uc.Transition(context.Background(), "ABC123", entities.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.WaStatus != entities.WaStatusFailed || res.Order.WaMessageID != "" {
		t.Fatalf("failed send must drop the previous message id: %+v", res.Order)
	}
	if stored.WaMessageID != "" || stored.WaStatus != entities.WaStatusFailed {
		t.Fatalf("unexpected stored order: %+v", stored)
	}

	// MessageStatus is not expected: there is no message to ask about.
	d.repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(stored, nil)
	expectIntegration(d.settings, "tok", true)

	refreshed, err := d.uc.RefreshNotificationStatus(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.Order.WaStatus != entities.WaStatusFailed {
		t.Fatalf("refresh must keep the failed status, got %s", refreshed.Order.WaStatus)
	}
	if refreshed.Notification == nil || refreshed.Notification.Outcome != DispatchSkipped {
		t.Fatalf("unexpected notification: %+v", refreshed.Notification)
	}
}
