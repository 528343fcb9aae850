package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/core/apperror"
	"shopledger/internal/domain/documents/sale"
	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// SaleHandler rings up and lists sales.
type SaleHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, l *ledger.Ledger) *SaleHandler {
	return &SaleHandler{BaseHandler: base, ledger: l}
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	writeList(h.BaseHandler, c, h.ledger.ListSales())
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := h.ParseID(c)
	if !ok {
		return
	}
	s, found := h.ledger.GetSale(saleID)
	if !found {
		h.NotFound(c, "sale", saleID)
		return
	}
	h.OK(c, s)
}

// Create handles POST /sales. Lines are put through a cart, so repeated
// products are merged and priced from the catalog before posting.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	checkout, err := req.ToCheckout()
	if err != nil {
		h.Error(c, err)
		return
	}
	productIDs, err := req.ProductIDs()
	if err != nil {
		h.Error(c, err)
		return
	}

	cart := sale.NewCart()
	for i, productID := range productIDs {
		qty := req.Items[i].Quantity
		if qty <= 0 {
			h.Error(c, apperror.NewInvalidSale("item quantity must be positive").
				WithDetail("line", i+1).
				WithDetail("quantity", qty))
			return
		}
		p, found := h.ledger.GetProduct(productID)
		if !found {
			h.Error(c, apperror.NewInvalidSale("product does not exist").
				WithDetail("line", i+1).
				WithDetail("productId", productID.String()))
			return
		}
		if err := cart.Add(p, qty); err != nil {
			h.Error(c, err)
			return
		}
	}

	posted, err := h.ledger.PostSale(c.Request.Context(), cart.Candidate(checkout))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, posted)
}
