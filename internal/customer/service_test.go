package customer

import (
	"context"
	"database/sql"
	"testing"

	"gymslot/internal/apperr"
	"gymslot/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, firstName, lastName, email, phoneNumber, passwordHash string) (*Customer, error) {
	args := m.Called(ctx, firstName, lastName, email, phoneNumber, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepo) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepo) FindByID(ctx context.Context, id int) (*Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) PrincipalExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestSignup(t *testing.T) {
	repo := new(MockRepo)
	repo.On("EmailExists", mock.Anything, "jane@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, "Jane", "Doe", "jane@example.com", "+14155550101", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			// The stored hash must verify against the original password.
			assert.True(t, auth.CheckPassword(args.String(5), "s3cur3pass"))
		}).
		Return(&Customer{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PhoneNumber: "+14155550101"}, nil)

	svc := NewService(repo, testSecret)

	cust, err := svc.Signup(context.Background(), SignupRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "+14155550101",
		Password:    "s3cur3pass",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cust.ID)
	repo.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := new(MockRepo)
	repo.On("EmailExists", mock.Anything, "jane@example.com").Return(true, nil)

	svc := NewService(repo, testSecret)

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "+14155550101",
		Password:    "s3cur3pass",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cur3pass")
	require.NoError(t, err)

	repo := new(MockRepo)
	repo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&Customer{ID: 42, Email: "jane@example.com", PasswordHash: hash}, nil)

	svc := NewService(repo, testSecret)

	token, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "s3cur3pass"})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.PrincipalID)
	assert.Equal(t, auth.KindCustomer, claims.PrincipalKind)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockRepo)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, sql.ErrNoRows)

	svc := NewService(repo, testSecret)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cur3pass")
	require.NoError(t, err)

	repo := new(MockRepo)
	repo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&Customer{ID: 42, Email: "jane@example.com", PasswordHash: hash}, nil)

	svc := NewService(repo, testSecret)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrongpass"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	// Same message as the unknown-email case, so callers cannot probe accounts.
	assert.Contains(t, err.Error(), "invalid credentials")
}
