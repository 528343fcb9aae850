package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shopledger/internal/domain/documents/purchase"
)

// PurchaseItemRequest is one ordered line.
type PurchaseItemRequest struct {
	ProductID   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreatePurchaseRequest is the request body for creating a purchase order.
type CreatePurchaseRequest struct {
	SupplierID   string                `json:"supplierId" binding:"required"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,dive"`
	Status       purchase.Status       `json:"status"`
	OrderDate    *time.Time            `json:"orderDate"`
	ExpectedDate *time.Time            `json:"expectedDate"`
}

// ToInput converts the request to a domain input. The supplier name is
// filled in by the ledger.
func (r *CreatePurchaseRequest) ToInput() (purchase.Input, error) {
	supplierID, err := parseID("supplierId", r.SupplierID)
	if err != nil {
		return purchase.Input{}, err
	}

	items := make([]purchase.ItemInput, len(r.Items))
	for i, it := range r.Items {
		productID, err := parseID("items.productId", it.ProductID)
		if err != nil {
			return purchase.Input{}, err
		}
		items[i] = purchase.ItemInput{
			ProductID:   productID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}

	in := purchase.Input{
		SupplierID:   supplierID,
		Items:        items,
		Status:       r.Status,
		ExpectedDate: r.ExpectedDate,
	}
	if r.OrderDate != nil {
		in.OrderDate = *r.OrderDate
	}
	return in, nil
}

// UpdatePurchaseRequest changes the tracking fields of a purchase.
type UpdatePurchaseRequest struct {
	Status       *purchase.Status `json:"status"`
	ExpectedDate *time.Time       `json:"expectedDate"`
	ReceivedDate *time.Time       `json:"receivedDate"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdatePurchaseRequest) ToPatch() purchase.Patch {
	return purchase.Patch{
		Status:       r.Status,
		ExpectedDate: r.ExpectedDate,
		ReceivedDate: r.ReceivedDate,
	}
}
