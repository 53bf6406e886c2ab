package dto

import (
	"strings"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required,max=255" example:"Saulo"`
	LastName  string           `json:"lastName" validate:"required,max=255" example:"Couto"`
	TaxID     string           `json:"taxId" validate:"required,max=14,cpf" example:"08316540584"`
	Income    *decimal.Decimal `json:"income" swaggertype:"string" example:"521.70"`
	Email     string           `json:"email" validate:"required,max=255,email_address" example:"slcouto@teste"`
	Password  string           `json:"password" validate:"required,max=72" example:"123456"`
	ZipCode   string           `json:"zipCode" validate:"required,max=20" example:"45990000"`
	Street    string           `json:"street" validate:"required,max=255" example:"Rua do Saulo, 123"`
}

func (r *CreateCustomerRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.TaxID = strings.TrimSpace(r.TaxID)
	r.Email = strings.TrimSpace(r.Email)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.Street = strings.TrimSpace(r.Street)
}

func (r *CreateCustomerRequest) Validate() error {
	r.normalize()
	errs := apperrors.FieldErrors{}
	validateIncome(r.Income, errs)
	validateStruct(r, errs)
	return result(errs)
}

// ToCustomer maps the request onto a new aggregate. The password must
// already be hashed.
func (r *CreateCustomerRequest) ToCustomer(passwordHash string) *customer.Customer {
	return customer.NewCustomer(
		r.FirstName,
		r.LastName,
		strings.NewReplacer(".", "", "-", "").Replace(r.TaxID),
		*r.Income,
		r.Email,
		passwordHash,
		customer.Address{ZipCode: r.ZipCode, Street: r.Street},
	)
}

type UpdateCustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required,max=255" example:"Saulo"`
	LastName  string           `json:"lastName" validate:"required,max=255" example:"Couto"`
	Income    *decimal.Decimal `json:"income" swaggertype:"string" example:"1500.00"`
	ZipCode   string           `json:"zipCode" validate:"required,max=20" example:"45990000"`
	Street    string           `json:"street" validate:"required,max=255" example:"Rua Nova, 10"`
}

func (r *UpdateCustomerRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.Street = strings.TrimSpace(r.Street)

	errs := apperrors.FieldErrors{}
	validateIncome(r.Income, errs)
	validateStruct(r, errs)
	return result(errs)
}

func (r *UpdateCustomerRequest) ToUpdate() customer.Update {
	return customer.Update{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    *r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

func validateIncome(income *decimal.Decimal, errs apperrors.FieldErrors) {
	switch {
	case income == nil:
		errs["income"] = "This field is required"
	case income.IsNegative():
		errs["income"] = "Must be greater than or equal to 0"
	default:
		if msg := moneyMessage(*income); msg != "" {
			errs["income"] = msg
		}
	}
}

type CustomerResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Saulo"`
	LastName  string `json:"lastName" example:"Couto"`
	TaxID     string `json:"taxId" example:"08316540584"`
	Income    string `json:"income" example:"521.70"`
	Email     string `json:"email" example:"slcouto@teste"`
	ZipCode   string `json:"zipCode" example:"45990000"`
	Street    string `json:"street" example:"Rua do Saulo, 123"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		TaxID:     cust.TaxID,
		Income:    cust.Income.StringFixed(2),
		Email:     cust.Email,
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}
