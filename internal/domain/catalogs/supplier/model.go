// Package supplier provides the Supplier catalog.
package supplier

import (
	"context"
	"regexp"
	"strings"
	"time"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
)

var (
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Supplier is a business the shop buys stock from.
type Supplier struct {
	entity.BaseEntity

	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxNumber     string `json:"taxNumber"`
	ContactPerson string `json:"contactPerson"`
	PaymentTerms  string `json:"paymentTerms"`
}

// Input holds the caller-supplied fields of a new supplier.
type Input struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	TaxNumber     string
	ContactPerson string
	PaymentTerms  string
}

// Validate implements entity.Validatable.
func (in Input) Validate(ctx context.Context) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return validateContact(in.Email, in.TaxNumber)
}

// New builds a supplier with a fresh identity.
func New(in Input, now time.Time) Supplier {
	return Supplier{
		BaseEntity:    entity.NewBaseEntity(now),
		Name:          strings.TrimSpace(in.Name),
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		TaxNumber:     in.TaxNumber,
		ContactPerson: in.ContactPerson,
		PaymentTerms:  in.PaymentTerms,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	TaxNumber     *string
	ContactPerson *string
	PaymentTerms  *string
}

// Validate implements entity.Validatable.
func (p Patch) Validate(ctx context.Context) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperror.NewValidation("name cannot be empty").
			WithDetail("field", "name")
	}
	var email, taxNumber string
	if p.Email != nil {
		email = *p.Email
	}
	if p.TaxNumber != nil {
		taxNumber = *p.TaxNumber
	}
	return validateContact(email, taxNumber)
}

// Apply returns s with the patch applied.
func (p Patch) Apply(s Supplier) Supplier {
	if p.Name != nil {
		s.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.TaxNumber != nil {
		s.TaxNumber = *p.TaxNumber
	}
	if p.ContactPerson != nil {
		s.ContactPerson = *p.ContactPerson
	}
	if p.PaymentTerms != nil {
		s.PaymentTerms = *p.PaymentTerms
	}
	return s
}

func validateContact(email, taxNumber string) error {
	if email != "" && !emailRE.MatchString(email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	if taxNumber != "" && !digitsOnlyRE.MatchString(taxNumber) {
		return apperror.NewValidation("tax number must contain only digits").
			WithDetail("field", "taxNumber")
	}
	return nil
}

var (
	_ entity.Validatable = Input{}
	_ entity.Validatable = Patch{}
)
