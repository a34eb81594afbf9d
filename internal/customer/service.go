package customer

import (
	"context"

	"gymslot/internal/apperr"
	"gymslot/internal/auth"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Customer, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Customer, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.FirstName, req.LastName, req.Email, req.PhoneNumber, passwordHash)
}

// Login deliberately reports a single generic error for both an unknown
// email and a wrong password.
func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	cust, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", apperr.Unauthenticated("invalid credentials")
	}

	if !auth.CheckPassword(cust.PasswordHash, req.Password) {
		return "", apperr.Unauthenticated("invalid credentials")
	}

	return auth.GenerateToken(cust.ID, cust.Email, auth.KindCustomer, s.jwtSecret)
}
