// Package customer provides the Customer catalog.
// A customer accumulates the totals of every sale attributed to it.
package customer

import (
	"context"
	"regexp"
	"strings"
	"time"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/types"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// DocumentType is the kind of identity document a customer presents.
type DocumentType string

const (
	DocNationalID DocumentType = "national_id" // personal identity card
	DocTaxID      DocumentType = "tax_id"      // business tax registration
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocNationalID, DocTaxID:
		return true
	}
	return false
}

// Customer is a buyer known to the shop.
type Customer struct {
	entity.BaseEntity

	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`

	// TotalPurchases only grows, and only through sale posting.
	TotalPurchases types.Money `json:"totalPurchases"`
}

// AddPurchase returns c with amount added to TotalPurchases.
func (c Customer) AddPurchase(amount types.Money) Customer {
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	return c
}

// Input holds the caller-supplied fields of a new customer.
type Input struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	DocumentType   DocumentType
	DocumentNumber string
}

// Validate implements entity.Validatable.
func (in Input) Validate(ctx context.Context) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if in.DocumentType != "" && !in.DocumentType.IsValid() {
		return invalidDocumentType(in.DocumentType)
	}
	if in.Email != "" && !emailRE.MatchString(in.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

// New builds a customer with a fresh identity and zero total purchases.
func New(in Input, now time.Time) Customer {
	docType := in.DocumentType
	if docType == "" {
		docType = DocNationalID
	}
	return Customer{
		BaseEntity:     entity.NewBaseEntity(now),
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		DocumentType:   docType,
		DocumentNumber: in.DocumentNumber,
		TotalPurchases: types.Zero(),
	}
}

// Patch is a partial update. TotalPurchases is deliberately absent.
type Patch struct {
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	DocumentType   *DocumentType
	DocumentNumber *string
}

// Validate implements entity.Validatable.
func (p Patch) Validate(ctx context.Context) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperror.NewValidation("name cannot be empty").
			WithDetail("field", "name")
	}
	if p.DocumentType != nil && !p.DocumentType.IsValid() {
		return invalidDocumentType(*p.DocumentType)
	}
	if p.Email != nil && *p.Email != "" && !emailRE.MatchString(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

// Apply returns c with the patch applied.
func (p Patch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.DocumentType != nil {
		c.DocumentType = *p.DocumentType
	}
	if p.DocumentNumber != nil {
		c.DocumentNumber = *p.DocumentNumber
	}
	return c
}

func invalidDocumentType(t DocumentType) error {
	return apperror.NewValidation("invalid document type").
		WithDetail("field", "documentType").
		WithDetail("value", string(t))
}

var (
	_ entity.Validatable = Input{}
	_ entity.Validatable = Patch{}
)
