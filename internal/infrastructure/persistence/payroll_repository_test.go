package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPayrollRepository creates a GormPayrollRepository with a mocked SQL connection
func newMockPayrollRepository(t *testing.T) (*GormPayrollRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPayrollRepository(gormDB), mock, mockDB
}

func TestGormPayrollRepository_FindByEmployeeAndPeriod(t *testing.T) {
	t.Run("finds existing record", func(t *testing.T) {
		repo, mock, mockDB := newMockPayrollRepository(t)
		defer mockDB.Close()

		recordID := uuid.New()
		tenantID := uuid.New()
		employeeID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "employee_id", "period", "gross", "deductions", "net"}).
			AddRow(recordID, tenantID, employeeID, "2025-03", decimal.NewFromInt(5500), decimal.NewFromInt(550), decimal.NewFromInt(4950))

		mock.ExpectQuery(`SELECT \* FROM "payroll_records" WHERE tenant_id = \$1 AND employee_id = \$2 AND period = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, employeeID, "2025-03", 1).
			WillReturnRows(rows)

		record, err := repo.FindByEmployeeAndPeriod(context.Background(), tenantID, employeeID, "2025-03")

		assert.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, recordID, record.ID)
		assert.Equal(t, "2025-03", record.Period)
		assert.True(t, record.Net.Equal(decimal.NewFromInt(4950)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		repo, mock, mockDB := newMockPayrollRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		employeeID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payroll_records" WHERE tenant_id = \$1 AND employee_id = \$2 AND period = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, employeeID, "2025-03", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		record, err := repo.FindByEmployeeAndPeriod(context.Background(), tenantID, employeeID, "2025-03")

		assert.NoError(t, err)
		assert.Nil(t, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPayrollRepository_Create(t *testing.T) {
	newRecord := func(t *testing.T) *payroll.PayrollRecord {
		period, err := hr.ParsePeriod("2025-03")
		require.NoError(t, err)
		record, err := payroll.NewPayrollRecord(uuid.New(), uuid.New(), period, payroll.Calculation{
			Gross:      decimal.NewFromInt(5500),
			Deductions: decimal.NewFromInt(550),
			Net:        decimal.NewFromInt(4950),
		})
		require.NoError(t, err)
		return record
	}

	t.Run("inserts record", func(t *testing.T) {
		repo, mock, mockDB := newMockPayrollRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "payroll_records"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), newRecord(t))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates unique violation to duplicate period error", func(t *testing.T) {
		repo, mock, mockDB := newMockPayrollRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "payroll_records"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.Create(context.Background(), newRecord(t))

		assert.ErrorIs(t, err, payroll.ErrDuplicatePeriod)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes through other errors", func(t *testing.T) {
		repo, mock, mockDB := newMockPayrollRepository(t)
		defer mockDB.Close()

		dbErr := errors.New("connection reset")
		mock.ExpectExec(`INSERT INTO "payroll_records"`).
			WillReturnError(dbErr)

		err := repo.Create(context.Background(), newRecord(t))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, payroll.ErrDuplicatePeriod)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
