package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// SupplierHandler handles the supplier catalog.
type SupplierHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(base *BaseHandler, l *ledger.Ledger) *SupplierHandler {
	return &SupplierHandler{BaseHandler: base, ledger: l}
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	writeList(h.BaseHandler, c, h.ledger.ListSuppliers())
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	supplierID, ok := h.ParseID(c)
	if !ok {
		return
	}
	s, found := h.ledger.GetSupplier(supplierID)
	if !found {
		h.NotFound(c, "supplier", supplierID)
		return
	}
	h.OK(c, s)
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}
	s, err := h.ledger.AddSupplier(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, s)
}

// Update handles PATCH /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	supplierID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s, found, err := h.ledger.UpdateSupplier(c.Request.Context(), supplierID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.NotFound(c, "supplier", supplierID)
		return
	}
	h.OK(c, s)
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	supplierID, ok := h.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ledger.DeleteSupplier(c.Request.Context(), supplierID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "supplier", supplierID)
		return
	}
	h.NoContent(c)
}

// Products handles GET /suppliers/:id/products
func (h *SupplierHandler) Products(c *gin.Context) {
	supplierID, ok := h.ParseID(c)
	if !ok {
		return
	}
	writeList(h.BaseHandler, c, dto.FromProducts(h.ledger.SupplierProducts(supplierID)))
}
