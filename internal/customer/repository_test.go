package customer

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewRepository(sqlxDB), mock, func() { db.Close() }
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone_number", "password_hash", "created_at"}).
		AddRow(1, "Jane", "Doe", "jane@example.com", "+14155550101", "hashed", time.Now())
}

func TestCreateCustomer(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs("Jane", "Doe", "jane@example.com", "+14155550101", "hashed").
		WillReturnRows(customerRows())

	cust, err := repo.Create(context.Background(), "Jane", "Doe", "jane@example.com", "+14155550101", "hashed")
	require.NoError(t, err)
	assert.Equal(t, 1, cust.ID)
	assert.Equal(t, "jane@example.com", cust.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(customerRows())

	cust, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", cust.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNotFound(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFindByID(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id").
		WithArgs(1).
		WillReturnRows(customerRows())

	cust, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cust.ID)
}

func TestEmailExists(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPrincipalExists(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.PrincipalExists(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, exists)
}
