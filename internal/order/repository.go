package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrCapacityExhausted = errors.New("slot has no available capacity")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateOrder performs the capacity decrement as a guarded conditional
// UPDATE and checks affected rows, so two concurrent orders against a slot
// with one remaining unit cannot both succeed. The decrement and the order
// INSERT commit together or not at all.
func (r *repository) CreateOrder(ctx context.Context, customerID, gymID, slotID int, orderTime time.Time) (*Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET available_capacity = available_capacity - 1
		WHERE id = $1 AND available_capacity > 0
	`, slotID)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrCapacityExhausted
	}

	var order Order
	err = tx.GetContext(ctx, &order, `
		INSERT INTO orders (customer_id, gym_id, slot_id, order_time, status)
		VALUES ($1, $2, $3, $4, 'Created')
		RETURNING id, customer_id, gym_id, slot_id, order_time, status, created_at
	`, customerID, gymID, slotID, orderTime)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &order, nil
}

// TransitionStatus locks the order row for the duration of the transaction,
// so the holding-to-terminal capacity release happens at most once even
// under concurrent transitions against the same order.
func (r *repository) TransitionStatus(ctx context.Context, id int, to Status) (*Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Order
	err = tx.GetContext(ctx, &current, `
		SELECT id, customer_id, gym_id, slot_id, order_time, status, created_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if current.Status == to {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return &current, nil
	}

	if !CanTransition(current.Status, to) {
		return nil, ErrInvalidTransition
	}

	var updated Order
	err = tx.GetContext(ctx, &updated, `
		UPDATE orders
		SET status = $2
		WHERE id = $1
		RETURNING id, customer_id, gym_id, slot_id, order_time, status, created_at
	`, id, to)
	if err != nil {
		return nil, err
	}

	if current.Status.Holding() && to.Terminal() {
		if _, err := tx.ExecContext(ctx, `
			UPDATE slots
			SET available_capacity = available_capacity + 1
			WHERE id = $1
		`, current.SlotID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	query := `
		SELECT id, customer_id, gym_id, slot_id, order_time, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order Order
	err := r.db.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *repository) GetOrdersByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	query := `
		SELECT id, customer_id, gym_id, slot_id, order_time, status, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	var orders []Order
	err := r.db.SelectContext(ctx, &orders, query, customerID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetOrdersByGym(ctx context.Context, gymID int) ([]OrderWithDetails, error) {
	query := `
		SELECT
			o.id,
			o.customer_id,
			o.gym_id,
			o.slot_id,
			o.order_time,
			o.status,
			o.created_at,
			s.start_time AS slot_start,
			s.end_time AS slot_end,
			g.name AS gym_name,
			c.email AS customer_email
		FROM orders o
		JOIN slots s ON o.slot_id = s.id
		JOIN gyms g ON o.gym_id = g.id
		JOIN customers c ON o.customer_id = c.id
		WHERE o.gym_id = $1
		ORDER BY s.start_time DESC, o.created_at DESC
	`

	var orders []OrderWithDetails
	err := r.db.SelectContext(ctx, &orders, query, gymID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}
