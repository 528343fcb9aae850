// Package sale provides the Sale document: an immutable record of goods sold
// to a customer, and the posting engine that turns a candidate into one.
package sale

import (
	"context"
	"slices"
	"strings"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
)

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentWalletA      PaymentMethod = "mobile_wallet_a"
	PaymentWalletB      PaymentMethod = "mobile_wallet_b"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentWalletA, PaymentWalletB:
		return true
	}
	return false
}

// DocumentType selects the printed document and its numbering series.
type DocumentType string

const (
	DocReceipt DocumentType = "receipt"
	DocInvoice DocumentType = "invoice"
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	_, ok := series[t]
	return ok
}

// Status is the lifecycle state of a sale.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Item is one line of a sale. ProductName and UnitPrice are copied from the
// product at sale time and never follow later catalog edits.
type Item struct {
	ProductID   id.ID       `json:"productId"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Total       types.Money `json:"total"`
}

// Sale is a posted sale. It is never modified after posting.
type Sale struct {
	entity.BaseEntity

	// CustomerID may be nil (walk-in) or dangle after the customer is deleted.
	CustomerID   id.Ref `json:"customerId,omitempty"`
	CustomerName string `json:"customerName"`

	Items    []Item      `json:"items"`
	Subtotal types.Money `json:"subtotal"`
	Tax      types.Money `json:"tax"`
	Total    types.Money `json:"total"`

	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	DocumentType   DocumentType  `json:"documentType"`
	DocumentNumber string        `json:"documentNumber"`
	Status         Status        `json:"status"`
}

// Clone returns a copy of s that shares no items or references with it.
func (s Sale) Clone() Sale {
	s.Items = slices.Clone(s.Items)
	if s.CustomerID != nil {
		ref := *s.CustomerID
		s.CustomerID = &ref
	}
	return s
}

// QuantityOf returns how many units of productID the sale carries.
func (s Sale) QuantityOf(productID id.ID) int {
	n := 0
	for _, item := range s.Items {
		if item.ProductID == productID {
			n += item.Quantity
		}
	}
	return n
}

// Candidate is everything a sale carries before it gets an identity, a
// timestamp and a document number. Items are expected to be merged per
// product; a Cart produces candidates in that shape.
type Candidate struct {
	CustomerID    id.Ref
	CustomerName  string
	Items         []Item
	Subtotal      types.Money
	Tax           types.Money
	Total         types.Money
	PaymentMethod PaymentMethod
	DocumentType  DocumentType
	Status        Status
}

// Validate checks the candidate on its own, without looking at the catalog.
func (c Candidate) Validate(ctx context.Context) error {
	if len(c.Items) == 0 {
		return apperror.NewInvalidSale("sale must have at least one item").
			WithDetail("field", "items")
	}
	for i, item := range c.Items {
		if item.Quantity <= 0 {
			return apperror.NewInvalidSale("item quantity must be positive").
				WithDetail("line", i+1).
				WithDetail("quantity", item.Quantity)
		}
		if id.IsNil(item.ProductID) {
			return apperror.NewInvalidSale("item product is required").
				WithDetail("line", i+1)
		}
	}
	if strings.TrimSpace(c.CustomerName) == "" {
		return apperror.NewInvalidSale("customer name is required").
			WithDetail("field", "customerName")
	}
	if !c.PaymentMethod.IsValid() {
		return apperror.NewInvalidSale("unknown payment method").
			WithDetail("value", string(c.PaymentMethod))
	}
	if !c.DocumentType.IsValid() {
		return apperror.NewInvalidSale("unknown document type").
			WithDetail("value", string(c.DocumentType))
	}
	if !c.Status.IsValid() {
		return apperror.NewInvalidSale("unknown status").
			WithDetail("value", string(c.Status))
	}
	return nil
}

var _ entity.Validatable = Candidate{}
