package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var creditWithOwnerColumns = []string{
	"id", "credit_code", "credit_value", "day_first_installment", "number_of_installments", "status", "created_at",
	"customer_id", "first_name", "last_name", "tax_id", "income", "email", "password", "zip_code", "street",
	"customer_created_at", "customer_updated_at",
}

func setupCreditRepo(t *testing.T) (context.Context, *CreditRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	return context.Background(), NewCreditRepository(mockPool, logger), mockPool
}

func addCreditRow(rows *pgxmock.Rows, c *credit.Credit) *pgxmock.Rows {
	o := c.Customer
	return rows.AddRow(
		c.ID, c.CreditCode, c.CreditValue, c.DayFirstInstallment, c.NumberOfInstallments, string(c.Status), c.CreatedAt,
		o.ID, o.FirstName, o.LastName, o.TaxID, o.Income, o.Email, o.Password, o.Address.ZipCode, o.Address.Street,
		o.CreatedAt, o.UpdatedAt,
	)
}

func storedCredit(id int64, ownerID int64) *credit.Credit {
	owner := newCustomerFixture()
	owner.ID = ownerID
	owner.CreatedAt = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	owner.UpdatedAt = owner.CreatedAt

	return &credit.Credit{
		ID:                   id,
		CreditCode:           uuid.New(),
		CreditValue:          decimal.RequireFromString("1500.00"),
		DayFirstInstallment:  time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		Customer:             owner,
		CreatedAt:            time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreditRepository_Save(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	c := credit.NewCredit(decimal.RequireFromString("5000"), time.Date(2026, time.December, 19, 0, 0, 0, 0, time.UTC), 48, 1)
	createdAt := time.Now()

	mockPool.ExpectQuery(regexp.QuoteMeta(insertCreditQuery)).WithArgs(
		c.CreditCode, c.CreditValue, c.DayFirstInstallment, 48, "IN_PROGRESS", int64(1),
	).WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), createdAt))

	err := repo.Save(ctx, c)

	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
	assert.Equal(t, createdAt, c.CreatedAt)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreditRepository_SaveWithoutOwner(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	c := credit.NewCredit(decimal.NewFromInt(10), time.Now(), 1, 0)

	assert.ErrorIs(t, repo.Save(ctx, c), apperrors.ErrInvalidArgument)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreditRepository_SaveDatabaseError(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	c := credit.NewCredit(decimal.NewFromInt(10), time.Now(), 1, 1)
	mockPool.ExpectQuery(regexp.QuoteMeta(insertCreditQuery)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(ctx, c)

	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	assert.Contains(t, err.Error(), "failed to insert credit")
}

func TestCreditRepository_FindAllByCustomerID(t *testing.T) {
	t.Run("returns credits in id order with owner", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		first, second := storedCredit(1, 7), storedCredit(2, 7)
		rows := pgxmock.NewRows(creditWithOwnerColumns)
		addCreditRow(rows, first)
		addCreditRow(rows, second)

		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditsByCustomerQuery)).WithArgs(int64(7)).WillReturnRows(rows)

		credits, err := repo.FindAllByCustomerID(ctx, 7)

		require.NoError(t, err)
		require.Len(t, credits, 2)
		assert.Equal(t, first, credits[0])
		assert.Equal(t, second, credits[1])
		assert.Equal(t, "slcouto@teste", credits[0].Customer.Email)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditsByCustomerQuery)).WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows(creditWithOwnerColumns))

		credits, err := repo.FindAllByCustomerID(ctx, 8)

		require.NoError(t, err)
		assert.NotNil(t, credits)
		assert.Empty(t, credits)
	})

	t.Run("query failure", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditsByCustomerQuery)).WithArgs(int64(8)).
			WillReturnError(errors.New("relation does not exist"))

		_, err := repo.FindAllByCustomerID(ctx, 8)

		assert.ErrorIs(t, err, apperrors.ErrDatabase)
	})
}

func TestCreditRepository_FindByCreditCode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		expected := storedCredit(3, 7)
		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditByCodeQuery)).WithArgs(expected.CreditCode).
			WillReturnRows(addCreditRow(pgxmock.NewRows(creditWithOwnerColumns), expected))

		found, err := repo.FindByCreditCode(ctx, expected.CreditCode)

		require.NoError(t, err)
		assert.Equal(t, expected, found)
		assert.Equal(t, int64(7), found.OwnerID())
	})

	t.Run("unknown code", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		code := uuid.New()
		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditByCodeQuery)).WithArgs(code).
			WillReturnError(pgx.ErrNoRows)

		found, err := repo.FindByCreditCode(ctx, code)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCreditRepository_CountByStatus(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(countCreditsByStatusQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("IN_PROGRESS", int64(5)).
			AddRow("APPROVED", int64(2)))

	counts, err := repo.CountByStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, map[credit.Status]int64{
		credit.StatusInProgress: 5,
		credit.StatusApproved:   2,
		credit.StatusRejected:   0,
	}, counts)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreditRepository_UnknownStoredStatus(t *testing.T) {
	t.Run("find by code", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		stored := storedCredit(4, 7)
		stored.Status = credit.Status("PAID")
		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditByCodeQuery)).WithArgs(stored.CreditCode).
			WillReturnRows(addCreditRow(pgxmock.NewRows(creditWithOwnerColumns), stored))

		found, err := repo.FindByCreditCode(ctx, stored.CreditCode)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("list by customer", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		stored := storedCredit(5, 7)
		stored.Status = credit.Status("PAID")
		mockPool.ExpectQuery(regexp.QuoteMeta(findCreditsByCustomerQuery)).WithArgs(int64(7)).
			WillReturnRows(addCreditRow(pgxmock.NewRows(creditWithOwnerColumns), stored))

		credits, err := repo.FindAllByCustomerID(ctx, 7)

		assert.Nil(t, credits)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
	})

	t.Run("count by status", func(t *testing.T) {
		ctx, repo, mockPool := setupCreditRepo(t)
		defer mockPool.Close()

		mockPool.ExpectQuery(regexp.QuoteMeta(countCreditsByStatusQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
				AddRow("IN_PROGRESS", int64(1)).
				AddRow("PAID", int64(3)))

		counts, err := repo.CountByStatus(ctx)

		assert.Nil(t, counts)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
	})
}
