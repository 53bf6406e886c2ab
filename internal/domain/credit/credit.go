package credit

import (
	"fmt"
	"time"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const (
	MaxMonthsAhead  = 3
	MinInstallments = 1
	MaxInstallments = 48
)

type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	Customer             *customer.Customer
	CreatedAt            time.Time
}

// NewCredit builds an unsaved credit request. Only the owner's ID is set on
// Customer until the service resolves it.
func NewCredit(value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) *Credit {
	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  DateOf(dayFirstInstallment),
		NumberOfInstallments: installments,
		Status:               StatusInProgress,
		Customer:             &customer.Customer{ID: customerID},
	}
}

func (c *Credit) OwnerID() int64 {
	if c.Customer == nil {
		return 0
	}
	return c.Customer.ID
}

func (c *Credit) BelongsTo(customerID int64) bool {
	return c.OwnerID() == customerID
}

// ValidateFirstInstallment requires day to fall strictly before today plus
// MaxMonthsAhead calendar months. Time of day is ignored.
func ValidateFirstInstallment(day, today time.Time) error {
	limit := AddMonths(DateOf(today), MaxMonthsAhead)
	if !DateOf(day).Before(limit) {
		return fmt.Errorf("%w: first installment %s must be before %s",
			apperrors.ErrDateInvalid, DateOf(day).Format(time.DateOnly), limit.Format(time.DateOnly))
	}
	return nil
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds calendar months, clamping the day to the last day of the
// target month (Nov 30 + 3 months = Feb 28 or 29).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}
