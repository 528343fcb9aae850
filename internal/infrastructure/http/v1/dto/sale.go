package dto

import (
	"shopledger/internal/core/id"
	"shopledger/internal/domain/documents/sale"
)

// SaleItemRequest is one cart line: a product and how many units.
type SaleItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest rings up a sale. Prices come from the catalog, so the
// client only sends products and quantities.
type CreateSaleRequest struct {
	CustomerID    string             `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	PaymentMethod sale.PaymentMethod `json:"paymentMethod"`
	DocumentType  sale.DocumentType  `json:"documentType"`
	Items         []SaleItemRequest  `json:"items"`
}

// ToCheckout returns the payment part of the request.
func (r *CreateSaleRequest) ToCheckout() (sale.Checkout, error) {
	customerID, err := parseRef("customerId", r.CustomerID)
	if err != nil {
		return sale.Checkout{}, err
	}
	docType := r.DocumentType
	if docType == "" {
		docType = sale.DocReceipt
	}
	return sale.Checkout{
		CustomerID:    customerID,
		CustomerName:  r.CustomerName,
		PaymentMethod: r.PaymentMethod,
		DocumentType:  docType,
	}, nil
}

// ProductIDs parses the product reference of every line, in order.
func (r *CreateSaleRequest) ProductIDs() ([]id.ID, error) {
	ids := make([]id.ID, len(r.Items))
	for i, it := range r.Items {
		v, err := parseID("items.productId", it.ProductID)
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}
	return ids, nil
}
