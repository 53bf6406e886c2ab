package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	outcomeAccepted      = "accepted"
	outcomeDateInvalid   = "date_invalid"
	outcomeOwnerNotFound = "owner_not_found"
	outcomeError         = "error"
)

type CreditService interface {
	Save(ctx context.Context, credit *Credit) (*Credit, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo      CreditRepository
	customers customer.CustomerService
	pub       event.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewCreditService(repo CreditRepository, customers customer.CustomerService, pub event.Publisher, logger *slog.Logger) CreditService {
	return newCreditService(repo, customers, pub, logger, time.Now)
}

func newCreditService(repo CreditRepository, customers customer.CustomerService, pub event.Publisher, logger *slog.Logger, now func() time.Time) *creditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NewNoopPublisher(logger)
	}

	return &creditService{
		repo:      repo,
		customers: customers,
		pub:       pub,
		logger:    logger.With(slog.String("component", "creditService")),
		now:       now,
	}
}

func NewCreditRequestedEvent(c *Credit) event.CreditRequestedEvent {
	return event.CreditRequestedEvent{
		Timestamp: time.Now().UTC(),
		Payload: event.CreditEventPayload{
			CreditCode:           c.CreditCode.String(),
			CustomerID:           c.OwnerID(),
			CreditValue:          c.CreditValue.StringFixed(2),
			DayFirstInstallment:  c.DayFirstInstallment.Format(time.DateOnly),
			NumberOfInstallments: c.NumberOfInstallments,
			Status:               string(c.Status),
		},
	}
}

func (s *creditService) Save(ctx context.Context, c *Credit) (*Credit, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := s.logger.With(slog.String("creditCode", c.CreditCode.String()), slog.Int64("customerID", c.OwnerID()))
	logger.InfoContext(ctx, "Processing credit request")

	if err := ValidateFirstInstallment(c.DayFirstInstallment, s.now()); err != nil {
		logger.WarnContext(ctx, "Credit request rejected, first installment date out of range",
			slog.Time("dayFirstInstallment", c.DayFirstInstallment))
		monitoring.RecordCreditRequest(outcomeDateInvalid)
		return nil, err
	}

	if err := s.resolveOwner(ctx, c); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			monitoring.RecordCreditRequest(outcomeOwnerNotFound)
		} else {
			monitoring.RecordCreditRequest(outcomeError)
		}
		return nil, err
	}

	if c.Status == "" {
		c.Status = StatusInProgress
	}

	if err := s.repo.Save(ctx, c); err != nil {
		logger.ErrorContext(ctx, "Repository failed to save credit", slog.Any("error", err))
		monitoring.RecordCreditRequest(outcomeError)
		return nil, fmt.Errorf("failed to save credit: %w", err)
	}

	logger.InfoContext(ctx, "Credit request stored", slog.Int64("creditID", c.ID))
	monitoring.RecordCreditRequest(outcomeAccepted)

	if err := s.pub.PublishCreditRequested(ctx, NewCreditRequestedEvent(c)); err != nil {
		logger.ErrorContext(ctx, "Failed to publish credit requested event", slog.Any("error", err))
	}
	return c, nil
}

// resolveOwner replaces the bare owner reference with the stored customer.
func (s *creditService) resolveOwner(ctx context.Context, c *Credit) error {
	ownerID := c.OwnerID()
	if ownerID <= 0 {
		return apperrors.NewValidationError("customerId", "owner reference is required")
	}

	owner, err := s.customers.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	c.Customer = owner
	return nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository failed to list credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}
	if credits == nil {
		credits = []*Credit{}
	}
	logger.DebugContext(ctx, "Listed credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID), slog.String("creditCode", creditCode.String()))

	c, err := s.repo.FindByCreditCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Credit code not found by repository")
			return nil, apperrors.NewNotFoundError("credit code", creditCode)
		}
		logger.ErrorContext(ctx, "Repository failed to find credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get credit %s: %w", creditCode, err)
	}

	if !c.BelongsTo(customerID) {
		logger.WarnContext(ctx, "Credit requested by a customer who does not own it", slog.Int64("ownerID", c.OwnerID()))
		return nil, fmt.Errorf("%w: credit %s does not belong to customer %d", apperrors.ErrAccessDenied, creditCode, customerID)
	}
	return c, nil
}
