package sale

import (
	"slices"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/product"
)

// Cart assembles sale lines at the counter. Each product appears at most
// once; adding it again raises the quantity of the existing line.
type Cart struct {
	lines []Item
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of p in the cart. The line keeps the price p had when
// it was first added.
func (c *Cart) Add(p product.Product, qty int) error {
	if qty <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("quantity", qty)
	}
	if i := c.indexOf(p.ID); i >= 0 {
		line := &c.lines[i]
		line.Quantity += qty
		line.Total = types.LineTotal(line.Quantity, line.UnitPrice)
		return nil
	}
	c.lines = append(c.lines, Item{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   p.Price,
		Total:       types.LineTotal(qty, p.Price),
	})
	return nil
}

// SetQuantity changes the quantity of a line. Zero or less removes it.
func (c *Cart) SetQuantity(productID id.ID, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		line := &c.lines[i]
		line.Quantity = qty
		line.Total = types.LineTotal(qty, line.UnitPrice)
	}
}

// Remove drops the line for productID, if any.
func (c *Cart) Remove(productID id.ID) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	return slices.Clone(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals sums the line totals and applies tax.
func (c *Cart) Totals() types.Totals {
	subtotal := types.Zero()
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total)
	}
	return types.ComputeTotals(subtotal)
}

// Checkout describes who pays and how, for turning a cart into a candidate.
type Checkout struct {
	CustomerID    id.Ref
	CustomerName  string
	PaymentMethod PaymentMethod
	DocumentType  DocumentType
}

// Candidate builds a completed-sale candidate from the cart contents.
func (c *Cart) Candidate(co Checkout) Candidate {
	totals := c.Totals()
	return Candidate{
		CustomerID:    co.CustomerID,
		CustomerName:  co.CustomerName,
		Items:         c.Items(),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: co.PaymentMethod,
		DocumentType:  co.DocumentType,
		Status:        StatusCompleted,
	}
}

func (c *Cart) indexOf(productID id.ID) int {
	return slices.IndexFunc(c.lines, func(line Item) bool {
		return line.ProductID == productID
	})
}
