package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string
	Street  string
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	TaxID     string
	Income    decimal.Decimal
	Email     string
	Password  string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Update lists the only fields a registered customer may change.
type Update struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

func NewCustomer(firstName, lastName, taxID string, income decimal.Decimal, email, password string, address Address) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		TaxID:     taxID,
		Income:    income,
		Email:     email,
		Password:  password,
		Address:   address,
	}
}

// Apply returns a copy of c with the patch applied. c is left untouched.
func (c *Customer) Apply(u Update) *Customer {
	updated := *c
	updated.FirstName = u.FirstName
	updated.LastName = u.LastName
	updated.Income = u.Income
	updated.Address = Address{ZipCode: u.ZipCode, Street: u.Street}
	return &updated
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
