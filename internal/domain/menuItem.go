package domain

// MenuItem representa um item do cardápio (dim_menu_items)
type MenuItem struct {
	ItemID   int     `json:"item_id"`
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// DashboardOverview agrega os números exibidos na visão geral do dashboard
type DashboardOverview struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageTicket     float64 `json:"average_ticket"`
	TotalCustomers    int     `json:"total_customers"`
}
