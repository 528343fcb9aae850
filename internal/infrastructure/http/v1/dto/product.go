package dto

import (
	"github.com/shopspring/decimal"

	"shopledger/internal/domain/catalogs/product"
)

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	MaxStock    int             `json:"maxStock"`
	SupplierID  string          `json:"supplierId"`
	Description string          `json:"description"`
	Barcode     string          `json:"barcode"`
}

// ToInput converts the request to a domain input.
func (r *CreateProductRequest) ToInput() (product.Input, error) {
	supplierID, err := parseRef("supplierId", r.SupplierID)
	if err != nil {
		return product.Input{}, err
	}
	return product.Input{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		MaxStock:    r.MaxStock,
		SupplierID:  supplierID,
		Description: r.Description,
		Barcode:     r.Barcode,
	}, nil
}

// UpdateProductRequest is a partial update. An empty supplierId clears
// the supplier reference.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"minStock"`
	MaxStock    *int             `json:"maxStock"`
	SupplierID  *string          `json:"supplierId"`
	Description *string          `json:"description"`
	Barcode     *string          `json:"barcode"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateProductRequest) ToPatch() (product.Patch, error) {
	patch := product.Patch{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		MaxStock:    r.MaxStock,
		Description: r.Description,
		Barcode:     r.Barcode,
	}
	if r.SupplierID != nil {
		ref, err := parseRef("supplierId", *r.SupplierID)
		if err != nil {
			return product.Patch{}, err
		}
		patch.SupplierID = ref
		patch.ClearSupplier = ref == nil
	}
	return patch, nil
}

// ProductResponse is a product with its low-stock flag.
type ProductResponse struct {
	product.Product
	LowStock bool `json:"lowStock"`
}

// FromProduct converts a domain product to a response.
func FromProduct(p product.Product) ProductResponse {
	return ProductResponse{Product: p, LowStock: p.IsLowStock()}
}

// FromProducts converts a list of products.
func FromProducts(list []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(list))
	for i, p := range list {
		out[i] = FromProduct(p)
	}
	return out
}
