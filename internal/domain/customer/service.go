package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

type CustomerService interface {
	Save(ctx context.Context, customer *Customer) (*Customer, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	Update(ctx context.Context, customerID int64, patch Update) (*Customer, error)
	Delete(ctx context.Context, customerID int64) (*Customer, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.Publisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, pub event.Publisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if pub == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
		pub = event.NewNoopPublisher(logger)
	}

	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEvent(cust *Customer) event.CustomerEvent {
	return event.CustomerEvent{
		Timestamp: time.Now().UTC(),
		Payload: event.CustomerEventPayload{
			CustomerID: cust.ID,
			FirstName:  cust.FirstName,
			LastName:   cust.LastName,
			Email:      cust.Email,
			CreatedAt:  cust.CreatedAt,
			UpdatedAt:  cust.UpdatedAt,
		},
	}
}

func (s *customerService) Save(ctx context.Context, cust *Customer) (*Customer, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	s.logger.InfoContext(ctx, "Attempting to register customer")

	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.WarnContext(ctx, "Customer registration rejected, tax ID or email already in use")
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository failed to save customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger := s.logger.With(slog.Int64("customerID", cust.ID))
	logger.InfoContext(ctx, "Customer registered")
	monitoring.RecordCustomerRegistered()

	if err := s.pub.PublishCustomerRegistered(ctx, NewCustomerEvent(cust)); err != nil {
		logger.ErrorContext(ctx, "Failed to publish customer registered event", slog.Any("error", err))
	}
	return cust, nil
}

func (s *customerService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.DebugContext(ctx, "Looking up customer")

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Customer not found by repository")
			return nil, apperrors.NewNotFoundError("customer", customerID)
		}
		logger.ErrorContext(ctx, "Repository failed to find customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return cust, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, patch Update) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))

	current, err := s.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := current.Apply(patch)
	if err := s.repo.Save(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Customer disappeared before update was saved")
			return nil, apperrors.NewNotFoundError("customer", customerID)
		}
		logger.ErrorContext(ctx, "Repository failed to update customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	logger.InfoContext(ctx, "Customer updated")

	if err := s.pub.PublishCustomerUpdated(ctx, NewCustomerEvent(updated)); err != nil {
		logger.ErrorContext(ctx, "Failed to publish customer updated event", slog.Any("error", err))
	}
	return updated, nil
}

// Delete removes the customer and returns the record as it was before removal.
func (s *customerService) Delete(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))

	cust, err := s.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("customer", customerID)
		}
		logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	logger.InfoContext(ctx, "Customer deleted")

	if err := s.pub.PublishCustomerDeleted(ctx, NewCustomerEvent(cust)); err != nil {
		logger.ErrorContext(ctx, "Failed to publish customer deleted event", slog.Any("error", err))
	}
	return cust, nil
}
