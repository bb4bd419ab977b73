package repository

import (
	"context"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
)

const transactionsHashKey = "id"

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Category    string `dynamodbav:"category"`
	Amount      string `dynamodbav:"amount"`
	Description string `dynamodbav:"description,omitempty"`
	Date        string `dynamodbav:"date"`
}

// ExpenseDynamoRepository persists Expense entities in the transactions table.
//
// Table requirements:
//   - PK: id (string)
type ExpenseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb DynamoDBAPI, tableName string) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := expenseItem{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Description: e.Description,
		Date:        formatTime(e.Date),
	}
	if err := putItem(ctx, r.ddb, r.tableName, transactionsHashKey, it, true); err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	items, err := scanAll[expenseItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	expenses := make([]entities.Expense, 0, len(items))
	for _, it := range items {
		expenses = append(expenses, entities.Expense{
			ID:          it.ID,
			Category:    it.Category,
			Amount:      parseDecimal(it.Amount),
			Description: it.Description,
			Date:        parseTime(it.Date),
		})
	}
	return expenses, nil
}
