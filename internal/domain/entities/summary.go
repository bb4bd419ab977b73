package entities

import "github.com/shopspring/decimal"

// FinancialSummary is derived from the current orders and expenses on every read.
//
// Revenue counts every order regardless of status, including PENDING ones.
type FinancialSummary struct {
	TotalRevenue   decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetProfit      decimal.Decimal
	ActiveOrders   int
	ReadMessages   int
	OrdersByStatus map[OrderStatus]int
}

func Summarize(orders []Order, expenses []Expense) FinancialSummary {
	s := FinancialSummary{
		TotalRevenue:   decimal.Zero,
		TotalExpenses:  decimal.Zero,
		OrdersByStatus: make(map[OrderStatus]int, len(orderStatusSequence)),
	}
	for _, st := range orderStatusSequence {
		s.OrdersByStatus[st] = 0
	}

	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalPrice)
		if o.Status.IsActive() {
			s.ActiveOrders++
		}
		if o.WaStatus == WaStatusRead {
			s.ReadMessages++
		}
		s.OrdersByStatus[o.Status]++
	}
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.NetProfit = s.TotalRevenue.Sub(s.TotalExpenses)
	return s
}
