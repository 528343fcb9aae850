package dto

import "shopledger/internal/domain/catalogs/supplier"

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxNumber     string `json:"taxNumber"`
	ContactPerson string `json:"contactPerson"`
	PaymentTerms  string `json:"paymentTerms"`
}

// ToInput converts the request to a domain input.
func (r *CreateSupplierRequest) ToInput() supplier.Input {
	return supplier.Input{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		TaxNumber:     r.TaxNumber,
		ContactPerson: r.ContactPerson,
		PaymentTerms:  r.PaymentTerms,
	}
}

// UpdateSupplierRequest is a partial update.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	TaxNumber     *string `json:"taxNumber"`
	ContactPerson *string `json:"contactPerson"`
	PaymentTerms  *string `json:"paymentTerms"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateSupplierRequest) ToPatch() supplier.Patch {
	return supplier.Patch{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		TaxNumber:     r.TaxNumber,
		ContactPerson: r.ContactPerson,
		PaymentTerms:  r.PaymentTerms,
	}
}
