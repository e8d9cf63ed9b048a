package dto

type BalanceResponseDTO struct {
	Balance           string `json:"balance" example:"170.00"`
	PendingWithdrawal string `json:"pending_withdrawal" example:"30.00"`
}

type DashboardResponseDTO struct {
	TotalOrders       int    `json:"total_orders" example:"3"`
	CompletedOrders   int    `json:"completed_orders" example:"2"`
	TotalRevenue      string `json:"total_revenue" example:"200.00"`
	Balance           string `json:"balance" example:"170.00"`
	PendingWithdrawal string `json:"pending_withdrawal" example:"30.00"`
}
