package usecase

import (
	"context"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
)

//go:generate mockgen -source=summary_usecase.go -destination=../adapter/http/handlers/mocks/summary_usecase_mock.go -package=mocks

// ISummaryUseCase computes the dashboard figures. There is no stored state:
// both collections are read and reduced on every call.
type ISummaryUseCase interface {
	GetSummary(ctx context.Context) (entities.FinancialSummary, error)
}

type SummaryUseCase struct {
	orders   interfaces.IOrderRepository
	expenses interfaces.IExpenseRepository
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(orders interfaces.IOrderRepository, expenses interfaces.IExpenseRepository) *SummaryUseCase {
	return &SummaryUseCase{orders: orders, expenses: expenses}
}

func (u *SummaryUseCase) GetSummary(ctx context.Context) (entities.FinancialSummary, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	expenses, err := u.expenses.List(ctx)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	return entities.Summarize(orders, expenses), nil
}
