package dto

import "shopledger/internal/domain/catalogs/customer"

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name           string                `json:"name" binding:"required"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	DocumentType   customer.DocumentType `json:"documentType"`
	DocumentNumber string                `json:"documentNumber"`
}

// ToInput converts the request to a domain input.
func (r *CreateCustomerRequest) ToInput() customer.Input {
	return customer.Input{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
	}
}

// UpdateCustomerRequest is a partial update. Accumulated purchases are
// not client-editable.
type UpdateCustomerRequest struct {
	Name           *string                `json:"name"`
	Email          *string                `json:"email"`
	Phone          *string                `json:"phone"`
	Address        *string                `json:"address"`
	DocumentType   *customer.DocumentType `json:"documentType"`
	DocumentNumber *string                `json:"documentNumber"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateCustomerRequest) ToPatch() customer.Patch {
	return customer.Patch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
	}
}
