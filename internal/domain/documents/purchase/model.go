// Package purchase provides the Purchase document: a supplier order tracked
// from placement to receipt.
//
// Receiving a purchase only records the date. Product stock is not touched;
// stock is adjusted through the product catalog.
package purchase

import (
	"context"
	"slices"
	"time"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
)

// Status is the lifecycle state of a purchase.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReceived, StatusCancelled:
		return true
	}
	return false
}

// Item is one ordered line.
type Item struct {
	ProductID   id.ID       `json:"productId"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Total       types.Money `json:"total"`
}

// Purchase is an order placed with a supplier.
type Purchase struct {
	entity.BaseEntity

	// SupplierID may dangle after the supplier is deleted.
	SupplierID   id.ID  `json:"supplierId"`
	SupplierName string `json:"supplierName"`

	Items    []Item      `json:"items"`
	Subtotal types.Money `json:"subtotal"`
	Tax      types.Money `json:"tax"`
	Total    types.Money `json:"total"`

	Status       Status     `json:"status"`
	OrderDate    time.Time  `json:"orderDate"`
	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
}

// Clone returns a copy of p that shares no items or dates with it.
func (p Purchase) Clone() Purchase {
	p.Items = slices.Clone(p.Items)
	p.ExpectedDate = cloneTime(p.ExpectedDate)
	p.ReceivedDate = cloneTime(p.ReceivedDate)
	return p
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// ItemInput is one requested line. The line total is computed.
type ItemInput struct {
	ProductID   id.ID
	ProductName string
	Quantity    int
	UnitPrice   types.Money
}

// Input holds the caller-supplied fields of a new purchase.
type Input struct {
	SupplierID   id.ID
	SupplierName string
	Items        []ItemInput
	Status       Status
	OrderDate    time.Time
	ExpectedDate *time.Time
}

// Validate implements entity.Validatable.
func (in Input) Validate(ctx context.Context) error {
	if id.IsNil(in.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if len(in.Items) == 0 {
		return apperror.NewValidation("purchase must have at least one item").
			WithDetail("field", "items")
	}
	for i, item := range in.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("item product is required").
				WithDetail("line", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("item quantity must be positive").
				WithDetail("line", i+1).
				WithDetail("quantity", item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return apperror.NewValidation("item price must not be negative").
				WithDetail("line", i+1)
		}
	}
	if in.Status != "" && !in.Status.IsValid() {
		return invalidStatus(in.Status)
	}
	return nil
}

// New builds a purchase with computed line and document totals.
// Status defaults to pending and OrderDate to now.
func New(in Input, now time.Time) Purchase {
	items := make([]Item, len(in.Items))
	subtotal := types.Zero()
	for i, it := range in.Items {
		total := types.LineTotal(it.Quantity, it.UnitPrice)
		items[i] = Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       total,
		}
		subtotal = subtotal.Add(total)
	}
	totals := types.ComputeTotals(subtotal)

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	p := Purchase{
		BaseEntity:   entity.NewBaseEntity(now),
		SupplierID:   in.SupplierID,
		SupplierName: in.SupplierName,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Status:       status,
		OrderDate:    orderDate,
		ExpectedDate: in.ExpectedDate,
	}
	if status == StatusReceived {
		p.ReceivedDate = &now
	}
	return p
}

// Patch is a partial update of the tracking fields.
type Patch struct {
	Status       *Status
	ExpectedDate *time.Time
	ReceivedDate *time.Time
}

// Validate implements entity.Validatable.
func (p Patch) Validate(ctx context.Context) error {
	if p.Status != nil && !p.Status.IsValid() {
		return invalidStatus(*p.Status)
	}
	return nil
}

// Apply returns pu with the patch applied. Moving to received stamps
// ReceivedDate with now unless a date is given or already recorded.
func (p Patch) Apply(pu Purchase, now time.Time) Purchase {
	if p.ExpectedDate != nil {
		d := *p.ExpectedDate
		pu.ExpectedDate = &d
	}
	if p.ReceivedDate != nil {
		d := *p.ReceivedDate
		pu.ReceivedDate = &d
	}
	if p.Status != nil {
		pu.Status = *p.Status
		if pu.Status == StatusReceived && pu.ReceivedDate == nil {
			pu.ReceivedDate = &now
		}
	}
	return pu
}

func invalidStatus(s Status) error {
	return apperror.NewValidation("invalid purchase status").
		WithDetail("field", "status").
		WithDetail("value", string(s))
}

var (
	_ entity.Validatable = Input{}
	_ entity.Validatable = Patch{}
)
