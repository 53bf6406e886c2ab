package customer

import "context"

// CustomerRepository persists customers. Save inserts when ID is zero and
// updates otherwise, filling ID and timestamps on the passed value.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}
