package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	insertCreditQuery = `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	selectCreditWithOwner = `
        SELECT cr.id, cr.credit_code, cr.credit_value, cr.day_first_installment, cr.number_of_installments, cr.status, cr.created_at,
               c.id, c.first_name, c.last_name, c.tax_id, c.income, c.email, c.password, c.zip_code, c.street, c.created_at, c.updated_at
        FROM credits cr
        JOIN customers c ON c.id = cr.customer_id`

	findCreditsByCustomerQuery = selectCreditWithOwner + `
        WHERE cr.customer_id = $1
        ORDER BY cr.id ASC`

	findCreditByCodeQuery = selectCreditWithOwner + `
        WHERE cr.credit_code = $1`

	countCreditsByStatusQuery = `SELECT status, COUNT(*) FROM credits GROUP BY status`
)

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.CreditRepository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditRepository, using default stderr handler")
	}
	return &CreditRepository{
		db:     db,
		logger: logger.With("component", "CreditRepository"),
	}
}

func (r *CreditRepository) Save(ctx context.Context, c *credit.Credit) error {
	if c == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	if c.OwnerID() == 0 {
		return fmt.Errorf("%w: credit has no owner", apperrors.ErrInvalidArgument)
	}
	logCtx := r.logger.With(slog.String("creditCode", c.CreditCode.String()), slog.Int64("customerID", c.OwnerID()))
	logCtx.InfoContext(ctx, "Attempting to insert credit")

	start := time.Now()
	err := r.db.QueryRow(ctx, insertCreditQuery,
		c.CreditCode,
		c.CreditValue,
		c.DayFirstInstallment,
		c.NumberOfInstallments,
		string(c.Status),
		c.OwnerID(),
	).Scan(&c.ID, &c.CreatedAt)
	observe("InsertCredit", start, err)

	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		logCtx.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return fmt.Errorf("failed to insert credit: %w", translatedErr)
	}

	logCtx.InfoContext(ctx, "Credit inserted successfully", slog.Int64("creditID", c.ID))
	return nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	logCtx := r.logger.With(slog.Int64("customerID", customerID))

	start := time.Now()
	rows, err := r.db.Query(ctx, findCreditsByCustomerQuery, customerID)
	if err != nil {
		observe("FindCreditsByCustomer", start, err)
		logCtx.ErrorContext(ctx, "Failed to query credits", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			observe("FindCreditsByCustomer", start, err)
			logCtx.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		credits = append(credits, c)
	}
	err = rows.Err()
	observe("FindCreditsByCustomer", start, err)
	if err != nil {
		logCtx.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	logCtx.DebugContext(ctx, "Credits found", slog.Int("count", len(credits)))
	return credits, nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*credit.Credit, error) {
	logCtx := r.logger.With(slog.String("creditCode", creditCode.String()))

	start := time.Now()
	c, err := scanCredit(r.db.QueryRow(ctx, findCreditByCodeQuery, creditCode))
	observe("FindCreditByCode", start, err)

	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			logCtx.DebugContext(ctx, "Credit not found")
			return nil, translatedErr
		}
		logCtx.ErrorContext(ctx, "Failed to find credit by code", slog.Any("error", err))
		return nil, translatedErr
	}
	return c, nil
}

func (r *CreditRepository) CountByStatus(ctx context.Context) (map[credit.Status]int64, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, countCreditsByStatusQuery)
	if err != nil {
		observe("CountCreditsByStatus", start, err)
		r.logger.ErrorContext(ctx, "Failed to count credits by status", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	counts := map[credit.Status]int64{
		credit.StatusInProgress: 0,
		credit.StatusApproved:   0,
		credit.StatusRejected:   0,
	}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			observe("CountCreditsByStatus", start, err)
			r.logger.ErrorContext(ctx, "Failed to scan credit status count", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		if !credit.Status(status).Valid() {
			err := fmt.Errorf("unknown credit status %q", status)
			observe("CountCreditsByStatus", start, err)
			r.logger.ErrorContext(ctx, "Stored credit has an unknown status", slog.String("status", status))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		counts[credit.Status(status)] = count
	}
	err = rows.Err()
	observe("CountCreditsByStatus", start, err)
	if err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return counts, nil
}

func scanCredit(row rowScanner) (*credit.Credit, error) {
	var (
		c      credit.Credit
		owner  customer.Customer
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.CreditCode,
		&c.CreditValue,
		&c.DayFirstInstallment,
		&c.NumberOfInstallments,
		&status,
		&c.CreatedAt,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.TaxID,
		&owner.Income,
		&owner.Email,
		&owner.Password,
		&owner.Address.ZipCode,
		&owner.Address.Street,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = credit.Status(status)
	if !c.Status.Valid() {
		return nil, fmt.Errorf("%w: credit %d has unknown status %q", apperrors.ErrDatabase, c.ID, status)
	}
	c.DayFirstInstallment = credit.DateOf(c.DayFirstInstallment)
	c.Customer = &owner
	return &c, nil
}
