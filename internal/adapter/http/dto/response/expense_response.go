package response

import (
	"time"

	"smart_laundry/internal/domain/entities"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	amount, _ := e.Amount.Float64()
	return ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      amount,
		Description: e.Description,
		Date:        e.Date,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}
