package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles purchase orders.
type PurchaseHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, l *ledger.Ledger) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, ledger: l}
}

// List handles GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	writeList(h.BaseHandler, c, h.ledger.ListPurchases())
}

// Get handles GET /purchases/:id
func (h *PurchaseHandler) Get(c *gin.Context) {
	purchaseID, ok := h.ParseID(c)
	if !ok {
		return
	}
	p, found := h.ledger.GetPurchase(purchaseID)
	if !found {
		h.NotFound(c, "purchase", purchaseID)
		return
	}
	h.OK(c, p)
}

// Create handles POST /purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	p, err := h.ledger.AddPurchase(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p)
}

// Update handles PATCH /purchases/:id
func (h *PurchaseHandler) Update(c *gin.Context) {
	purchaseID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, found, err := h.ledger.UpdatePurchase(c.Request.Context(), purchaseID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.NotFound(c, "purchase", purchaseID)
		return
	}
	h.OK(c, p)
}

// Delete handles DELETE /purchases/:id
func (h *PurchaseHandler) Delete(c *gin.Context) {
	purchaseID, ok := h.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ledger.DeletePurchase(c.Request.Context(), purchaseID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "purchase", purchaseID)
		return
	}
	h.NoContent(c)
}
