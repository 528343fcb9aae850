package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles the customer catalog.
type CustomerHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, l *ledger.Ledger) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, ledger: l}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	writeList(h.BaseHandler, c, h.ledger.ListCustomers())
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := h.ParseID(c)
	if !ok {
		return
	}
	cust, found := h.ledger.GetCustomer(customerID)
	if !found {
		h.NotFound(c, "customer", customerID)
		return
	}
	h.OK(c, cust)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}
	cust, err := h.ledger.AddCustomer(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cust)
}

// Update handles PATCH /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust, found, err := h.ledger.UpdateCustomer(c.Request.Context(), customerID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.NotFound(c, "customer", customerID)
		return
	}
	h.OK(c, cust)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, ok := h.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ledger.DeleteCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "customer", customerID)
		return
	}
	h.NoContent(c)
}

// History handles GET /customers/:id/history
func (h *CustomerHandler) History(c *gin.Context) {
	customerID, ok := h.ParseID(c)
	if !ok {
		return
	}
	h.OK(c, h.ledger.CustomerHistory(customerID))
}
