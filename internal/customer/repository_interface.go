package customer

import "context"

type Repository interface {
	Create(ctx context.Context, firstName, lastName, email, phoneNumber, passwordHash string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindByID(ctx context.Context, id int) (*Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PrincipalExists(ctx context.Context, id int) (bool, error)
}
