package dto

import (
	"errors"
	"net/mail"
	"reflect"
	"strings"

	"credit-engine/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// maxMoney is the smallest magnitude a NUMERIC(19,2) column cannot store.
var maxMoney = decimal.New(1, 17)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so field errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		addr, err := mail.ParseAddress(fl.Field().String())
		return err == nil && addr.Address == fl.Field().String()
	})

	return v
}

// validateStruct runs tag validation and merges it into errs.
func validateStruct(s any, errs apperrors.FieldErrors) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["_"] = err.Error()
		return
	}
	for _, e := range validationErrors {
		if _, exists := errs[e.Field()]; !exists {
			errs[e.Field()] = getValidationMessage(e)
		}
	}
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "cpf":
		return "Invalid CPF"
	case "email_address":
		return "Invalid email format"
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	default:
		return "Invalid value"
	}
}

// moneyMessage rejects amounts the store would round or overflow.
func moneyMessage(v decimal.Decimal) string {
	if !v.Equal(v.Truncate(2)) {
		return "Must have at most 2 decimal places"
	}
	if v.Abs().GreaterThanOrEqual(maxMoney) {
		return "Must be less than " + maxMoney.String()
	}
	return ""
}

func result(errs apperrors.FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsValidCPF checks the two Brazilian CPF check digits. Punctuation is ignored.
func IsValidCPF(raw string) bool {
	digits := make([]int, 0, 11)
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
