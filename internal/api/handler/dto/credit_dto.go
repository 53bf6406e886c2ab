package dto

import (
	"strings"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

var now = time.Now

type CreateCreditRequest struct {
	CreditValue          *decimal.Decimal `json:"creditValue" swaggertype:"string" example:"5000.00"`
	DayFirstInstallment  string           `json:"dayFirstInstallment" validate:"required,datetime=2006-01-02" example:"2026-12-19"`
	NumberOfInstallments int              `json:"numberOfInstallment" validate:"min=1,max=48" example:"12"`
	CustomerID           int64            `json:"customerId" validate:"gt=0" example:"1"`
}

func (r *CreateCreditRequest) Validate() error {
	r.DayFirstInstallment = strings.TrimSpace(r.DayFirstInstallment)

	errs := apperrors.FieldErrors{}
	switch {
	case r.CreditValue == nil:
		errs["creditValue"] = "This field is required"
	case !r.CreditValue.IsPositive():
		errs["creditValue"] = "Must be greater than 0"
	default:
		if msg := moneyMessage(*r.CreditValue); msg != "" {
			errs["creditValue"] = msg
		}
	}

	if day, err := time.Parse(time.DateOnly, r.DayFirstInstallment); err == nil {
		if !day.After(credit.DateOf(now())) {
			errs["dayFirstInstallment"] = "Must be a future date"
		}
	}
	validateStruct(r, errs)
	return result(errs)
}

// ToCredit builds the unsaved credit. Call only after Validate succeeds.
func (r *CreateCreditRequest) ToCredit() *credit.Credit {
	day, _ := time.Parse(time.DateOnly, r.DayFirstInstallment)
	return credit.NewCredit(*r.CreditValue, day, r.NumberOfInstallments, r.CustomerID)
}

type CreditViewResponse struct {
	CreditCode           string `json:"creditCode" example:"3f1a3c8e-8d53-4d7e-9a3b-4fd0f1d1c0aa"`
	CreditValue          string `json:"creditValue" example:"5000.00"`
	DayFirstInstallment  string `json:"dayFirstInstallment" example:"2026-12-19"`
	NumberOfInstallments int    `json:"numberOfInstallment" example:"12"`
	Status               string `json:"status" example:"IN_PROGRESS"`
	FirstNameCustomer    string `json:"firstNameCustomer" example:"Saulo"`
	EmailCustomer        string `json:"emailCustomer" example:"slcouto@teste"`
}

func NewCreditViewResponse(c *credit.Credit) CreditViewResponse {
	if c == nil {
		return CreditViewResponse{}
	}
	resp := CreditViewResponse{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          c.CreditValue.StringFixed(2),
		DayFirstInstallment:  c.DayFirstInstallment.Format(time.DateOnly),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
	}
	if c.Customer != nil {
		resp.FirstNameCustomer = c.Customer.FirstName
		resp.EmailCustomer = c.Customer.Email
	}
	return resp
}

type CreditListResponse struct {
	CreditCode           string `json:"creditCode" example:"3f1a3c8e-8d53-4d7e-9a3b-4fd0f1d1c0aa"`
	CreditValue          string `json:"creditValue" example:"5000.00"`
	NumberOfInstallments int    `json:"numberOfInstallment" example:"12"`
}

func NewCreditListResponse(credits []*credit.Credit) []CreditListResponse {
	resp := make([]CreditListResponse, 0, len(credits))
	for _, c := range credits {
		resp = append(resp, CreditListResponse{
			CreditCode:           c.CreditCode.String(),
			CreditValue:          c.CreditValue.StringFixed(2),
			NumberOfInstallments: c.NumberOfInstallments,
		})
	}
	return resp
}
