package usecase

import (
	"context"
	"errors"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
	ErrInvalidExpenseAmount   = errors.New("invalid expense amount")
)

//go:generate mockgen -source=expense_usecase.go -destination=../adapter/http/handlers/mocks/expense_usecase_mock.go -package=mocks

// IExpenseUseCase is the append-only operating expense ledger.
type IExpenseUseCase interface {
	AddExpense(ctx context.Context, category string, amount decimal.Decimal, description string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) AddExpense(ctx context.Context, category string, amount decimal.Decimal, description string) (entities.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return entities.Expense{}, ErrInvalidExpenseCategory
	}
	if !amount.IsPositive() {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	logrus.WithFields(logrus.Fields{
		"component":  "expense.usecase",
		"expense_id": created.ID,
		"category":   created.Category,
		"amount":     created.Amount.String(),
	}).Info("expense recorded")
	return created, nil
}

// List returns all expenses, newest first.
func (u *ExpenseUseCase) List(ctx context.Context) ([]entities.Expense, error) {
	expenses, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}
