// Package product provides the Product catalog: what the shop sells and how
// many units are on hand.
package product

import (
	"context"
	"strings"
	"time"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
)

// Product is a sellable item.
//
// Stock changes only through sale posting (decrement) or an explicit
// Patch that sets it. MinStock <= MaxStock is expected but not enforced.
type Product struct {
	entity.Audited

	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Price       types.Money `json:"price"`
	Stock       int         `json:"stock"`
	MinStock    int         `json:"minStock"`
	MaxStock    int         `json:"maxStock"`
	SupplierID  id.Ref      `json:"supplierId,omitempty"`
	Description string      `json:"description"`
	Barcode     string      `json:"barcode,omitempty"`
}

// IsLowStock reports whether stock has fallen to or below the reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Input holds the caller-supplied fields of a new product.
type Input struct {
	Name        string
	Category    string
	Price       types.Money
	Stock       int
	MinStock    int
	MaxStock    int
	SupplierID  id.Ref
	Description string
	Barcode     string
}

// Validate implements entity.Validatable.
func (in Input) Validate(ctx context.Context) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return validatePrice(in.Price)
}

// New builds a product with a fresh identity and both timestamps set to now.
func New(in Input, now time.Time) Product {
	return Product{
		Audited:     entity.NewAudited(now),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		SupplierID:  in.SupplierID,
		Description: in.Description,
		Barcode:     in.Barcode,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Category    *string
	Price       *types.Money
	Stock       *int
	MinStock    *int
	MaxStock    *int
	SupplierID  id.Ref
	Description *string
	Barcode     *string

	// ClearSupplier drops the supplier reference. Wins over SupplierID.
	ClearSupplier bool
}

// Validate implements entity.Validatable.
func (p Patch) Validate(ctx context.Context) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperror.NewValidation("name cannot be empty").
			WithDetail("field", "name")
	}
	if p.Price != nil {
		return validatePrice(*p.Price)
	}
	return nil
}

// Apply returns prod with the patch applied and UpdatedAt stamped.
func (p Patch) Apply(prod Product, now time.Time) Product {
	if p.Name != nil {
		prod.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.MinStock != nil {
		prod.MinStock = *p.MinStock
	}
	if p.MaxStock != nil {
		prod.MaxStock = *p.MaxStock
	}
	if p.SupplierID != nil {
		prod.SupplierID = id.NewRef(*p.SupplierID)
	}
	if p.ClearSupplier {
		prod.SupplierID = nil
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Barcode != nil {
		prod.Barcode = *p.Barcode
	}
	prod.Touch(now)
	return prod
}

// WithStock returns prod with stock set directly and UpdatedAt stamped.
func WithStock(prod Product, stock int, now time.Time) Product {
	return Patch{Stock: &stock}.Apply(prod, now)
}

func validatePrice(price types.Money) error {
	if price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", price.String())
	}
	return nil
}

var (
	_ entity.Validatable = Input{}
	_ entity.Validatable = Patch{}
)
