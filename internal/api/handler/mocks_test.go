package handler

import (
	"context"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Save(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*customer.Customer)
	return res, args.Error(1)
}

func (m *MockCustomerService) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*customer.Customer)
	return res, args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id int64, patch customer.Update) (*customer.Customer, error) {
	args := m.Called(ctx, id, patch)
	res, _ := args.Get(0).(*customer.Customer)
	return res, args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*customer.Customer)
	return res, args.Error(1)
}

type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) Save(ctx context.Context, c *credit.Credit) (*credit.Credit, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*credit.Credit)
	return res, args.Error(1)
}

func (m *MockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	args := m.Called(ctx, customerID)
	res, _ := args.Get(0).([]*credit.Credit)
	return res, args.Error(1)
}

func (m *MockCreditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*credit.Credit, error) {
	args := m.Called(ctx, customerID, code)
	res, _ := args.Get(0).(*credit.Credit)
	return res, args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
