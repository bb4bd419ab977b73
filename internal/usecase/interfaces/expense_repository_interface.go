package interfaces

import (
	"context"
	"smart_laundry/internal/domain/entities"
)

// IExpenseRepository abstracts the append-only expense ledger (table: transactions).

//go:generate mockgen -source=expense_repository_interface.go -destination=mocks/expense_repository_mock.go -package=mock_interfaces

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
}
