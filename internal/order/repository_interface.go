package order

import (
	"context"
	"time"
)

type Repository interface {
	// CreateOrder reserves one unit of slot capacity and inserts the order
	// in a single transaction. Returns ErrCapacityExhausted when the slot
	// has no available capacity.
	CreateOrder(ctx context.Context, customerID, gymID, slotID int, orderTime time.Time) (*Order, error)

	// TransitionStatus moves the order to the target status, releasing the
	// held capacity in the same transaction when a holding status leaves
	// for a terminal one. Transitioning into the current status is a no-op
	// that succeeds without touching capacity.
	TransitionStatus(ctx context.Context, id int, to Status) (*Order, error)

	GetOrderByID(ctx context.Context, id int) (*Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID int) ([]Order, error)
	GetOrdersByGym(ctx context.Context, gymID int) ([]OrderWithDetails, error)
}
