package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, firstName, lastName, email, phoneNumber, passwordHash string) (*Customer, error) {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone_number, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, phone_number, password_hash, created_at
	`

	var customer Customer
	err := r.db.GetContext(ctx, &customer, query, firstName, lastName, email, phoneNumber, passwordHash)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, password_hash, created_at
		FROM customers
		WHERE email = $1
	`

	var customer Customer
	err := r.db.GetContext(ctx, &customer, query, email)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, password_hash, created_at
		FROM customers
		WHERE id = $1
	`

	var customer Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) PrincipalExists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, err
	}

	return exists, nil
}
