package response

import (
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase"
)

type SummaryResponse struct {
	TotalRevenue           float64        `json:"total_revenue"`
	TotalExpenses          float64        `json:"total_expenses"`
	NetProfit              float64        `json:"net_profit"`
	TotalRevenueFormatted  string         `json:"total_revenue_formatted"`
	TotalExpensesFormatted string         `json:"total_expenses_formatted"`
	NetProfitFormatted     string         `json:"net_profit_formatted"`
	ActiveOrders           int            `json:"active_orders"`
	ReadMessages           int            `json:"read_messages"`
	OrdersByStatus         map[string]int `json:"orders_by_status"`
}

func FromSummary(s entities.FinancialSummary) SummaryResponse {
	revenue, _ := s.TotalRevenue.Float64()
	expenses, _ := s.TotalExpenses.Float64()
	profit, _ := s.NetProfit.Float64()

	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for st, n := range s.OrdersByStatus {
		byStatus[string(st)] = n
	}

	return SummaryResponse{
		TotalRevenue:           revenue,
		TotalExpenses:          expenses,
		NetProfit:              profit,
		TotalRevenueFormatted:  usecase.FormatRupiah(s.TotalRevenue),
		TotalExpensesFormatted: usecase.FormatRupiah(s.TotalExpenses),
		NetProfitFormatted:     usecase.FormatRupiah(s.NetProfit),
		ActiveOrders:           s.ActiveOrders,
		ReadMessages:           s.ReadMessages,
		OrdersByStatus:         byStatus,
	}
}
