package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles the product catalog.
type ProductHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, l *ledger.Ledger) *ProductHandler {
	return &ProductHandler{BaseHandler: base, ledger: l}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	writeList(h.BaseHandler, c, dto.FromProducts(h.ledger.ListProducts()))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}
	p, found := h.ledger.GetProduct(productID)
	if !found {
		h.NotFound(c, "product", productID)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	p, err := h.ledger.AddProduct(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromProduct(p))
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		h.Error(c, err)
		return
	}

	p, found, err := h.ledger.UpdateProduct(c.Request.Context(), productID, patch)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.NotFound(c, "product", productID)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ledger.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "product", productID)
		return
	}
	h.NoContent(c)
}

// LowStock handles GET /products/low-stock
func (h *ProductHandler) LowStock(c *gin.Context) {
	writeList(h.BaseHandler, c, dto.FromProducts(h.ledger.LowStockProducts()))
}

// Supplier handles GET /products/:id/supplier
func (h *ProductHandler) Supplier(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}
	s, found := h.ledger.ProductSupplier(productID)
	if !found {
		h.NotFound(c, "supplier", productID)
		return
	}
	h.OK(c, s)
}
