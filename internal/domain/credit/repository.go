package credit

import (
	"context"

	"github.com/google/uuid"
)

// CreditRepository persists credits. Loaded credits carry the full owner.
type CreditRepository interface {
	Save(ctx context.Context, credit *Credit) error
	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
