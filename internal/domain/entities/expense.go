package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost entry (soap, electricity, rent...).
//
// Storage model (DynamoDB):
//   - table: transactions
//   - PK: id
//
// Expenses are append-only.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}
