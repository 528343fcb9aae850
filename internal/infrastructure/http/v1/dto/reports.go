package dto

import (
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/reports"
)

// TopProductResponse is one row of the best-sellers ranking.
type TopProductResponse struct {
	ProductID    id.ID       `json:"productId"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Price        types.Money `json:"price"`
	QuantitySold int         `json:"quantitySold"`
}

// FromTopProducts converts ranking rows to responses.
func FromTopProducts(rows []reports.ProductSales) []TopProductResponse {
	out := make([]TopProductResponse, len(rows))
	for i, row := range rows {
		out[i] = TopProductResponse{
			ProductID:    row.Product.ID,
			Name:         row.Product.Name,
			Category:     row.Product.Category,
			Price:        row.Product.Price,
			QuantitySold: row.QuantitySold,
		}
	}
	return out
}
