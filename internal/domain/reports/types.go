package reports

import (
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/documents/sale"
)

// DefaultLimit is how many rows ranked views return when no limit is given.
const DefaultLimit = 5

// ProductSales is a product with the units sold across all sales.
type ProductSales struct {
	Product      product.Product `json:"product"`
	QuantitySold int             `json:"quantitySold"`
}

// CustomerHistory lists every sale attributed to one customer.
type CustomerHistory struct {
	CustomerID id.ID       `json:"customerId"`
	Sales      []sale.Sale `json:"sales"`
	Count      int         `json:"count"`
	Total      types.Money `json:"total"`
}

// MonthlyAmount is the revenue of one calendar month.
type MonthlyAmount struct {
	// Month is formatted as YYYY-MM
	Month  string      `json:"month"`
	Amount types.Money `json:"amount"`
	Count  int         `json:"count"`
}

// Dashboard holds the headline figures of the shop.
type Dashboard struct {
	// TotalRevenue sums every sale total regardless of status
	TotalRevenue types.Money `json:"totalRevenue"`
	TotalSales   int         `json:"totalSales"`

	TodaySales   int         `json:"todaySales"`
	TodayRevenue types.Money `json:"todayRevenue"`

	TotalProducts    int `json:"totalProducts"`
	TotalCustomers   int `json:"totalCustomers"`
	TotalSuppliers   int `json:"totalSuppliers"`
	LowStockProducts int `json:"lowStockProducts"`
	PendingPurchases int `json:"pendingPurchases"`

	MonthlySales []MonthlyAmount `json:"monthlySales"`
}
