package repository

import (
	"context"
	"testing"
	"time"

	"smart_laundry/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestExpenseDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo(map[string]string{"transactions": "id"})
	repo := NewExpenseDynamoRepository(ddb, "transactions")
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	for _, e := range []entities.Expense{
		{ID: "e1", Category: "Sabun", Amount: decimal.NewFromInt(10000), Description: "deterjen", Date: now},
		{ID: "e2", Category: "Listrik", Amount: decimal.NewFromInt(15000), Date: now.Add(time.Hour)},
		{ID: "e3", Category: "Plastik", Amount: decimal.RequireFromString("2500.50"), Date: now.Add(2 * time.Hour)},
	} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", e.ID, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(list))
	}
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Amount)
		if e.ID == "e1" && (e.Description != "deterjen" || !e.Date.Equal(now)) {
			t.Fatalf("unexpected expense: %+v", e)
		}
	}
	if !total.Equal(decimal.RequireFromString("27500.50")) {
		t.Fatalf("unexpected total %s", total)
	}
}
