package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/customer"
	"gymslot/internal/gym"
	"gymslot/internal/metrics"
)

// Notifier delivers order lifecycle notifications. Delivery is best-effort;
// the engine never fails an order because a notification could not be
// queued.
type Notifier interface {
	OrderConfirmed(ctx context.Context, email string, orderID int)
	OrderCancelled(ctx context.Context, email string, orderID int)
}

type Service interface {
	CreateOrder(ctx context.Context, principalID int, req CreateOrderRequest) (*Order, error)
	UpdateOrderStatus(ctx context.Context, principalID, orderID int, newStatus string) (*Order, error)
	CancelOrder(ctx context.Context, principalID, orderID int) error
	ListCustomerOrders(ctx context.Context, customerID int) ([]Order, error)
	ListGymOrders(ctx context.Context, vendorID, gymID int) ([]OrderWithDetails, error)
}

type service struct {
	repo         Repository
	gymRepo      gym.Repository
	customerRepo customer.Repository
	notifier     Notifier
	now          func() time.Time
}

func NewService(repo Repository, gymRepo gym.Repository, customerRepo customer.Repository, notifier Notifier) Service {
	return &service{
		repo:         repo,
		gymRepo:      gymRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// CreateOrder validates every reference before touching capacity, then
// delegates the atomic decrement-and-insert to the repository. Client
// supplied order_time must be in the future; the stored order_time is
// server-assigned.
func (s *service) CreateOrder(ctx context.Context, principalID int, req CreateOrderRequest) (*Order, error) {
	if req.CustomerID != principalID {
		return nil, apperr.Forbidden("orders can only be placed for your own account")
	}

	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("customer_id", "invalid customer ID")
		}
		return nil, err
	}

	g, err := s.gymRepo.GetGymByID(ctx, req.GymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("gym_id", "invalid gym ID")
		}
		return nil, err
	}
	if !g.Status.AcceptingOrders() {
		return nil, apperr.Validation("gym_id", "gym is not accepting orders")
	}

	slot, err := s.gymRepo.GetSlotByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("slot_id", "invalid slot ID")
		}
		return nil, err
	}
	if slot.GymID != req.GymID {
		return nil, apperr.Validation("slot_id", "slot does not belong to the given gym")
	}

	now := s.now()
	if !req.OrderTime.After(now) {
		return nil, apperr.Validation("order_time", "order time must be in the future")
	}

	ord, err := s.repo.CreateOrder(ctx, req.CustomerID, req.GymID, req.SlotID, now)
	if err != nil {
		if errors.Is(err, ErrCapacityExhausted) {
			metrics.RecordCapacityExhausted()
			return nil, apperr.Validation("slot_id", "slot has no available capacity")
		}
		return nil, err
	}

	metrics.RecordOrderCreated()
	return ord, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, principalID, orderID int, newStatus string) (*Order, error) {
	status, err := ParseStatus(newStatus)
	if err != nil {
		return nil, apperr.Validation("new_status", "invalid status")
	}
	if !ExternallySettable(status) {
		return nil, apperr.Validation("new_status", "status cannot be set directly")
	}

	return s.transition(ctx, principalID, orderID, status)
}

// CancelOrder is update_order_status to Cancelled. Cancelling an already
// cancelled order succeeds without releasing capacity again.
func (s *service) CancelOrder(ctx context.Context, principalID, orderID int) error {
	_, err := s.transition(ctx, principalID, orderID, StatusCancelled)
	return err
}

func (s *service) transition(ctx context.Context, principalID, orderID int, to Status) (*Order, error) {
	current, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}

	if current.CustomerID != principalID {
		return nil, apperr.Forbidden("you can only manage your own orders")
	}

	updated, err := s.repo.TransitionStatus(ctx, orderID, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			return nil, apperr.NotFound("order")
		case errors.Is(err, ErrInvalidTransition):
			return nil, apperr.Validation("new_status", "invalid status transition")
		}
		return nil, err
	}

	metrics.RecordOrderTransition(string(to))

	if s.notifier != nil && to != current.Status {
		if cust, err := s.customerRepo.FindByID(ctx, current.CustomerID); err == nil {
			switch to {
			case StatusConfirmed:
				s.notifier.OrderConfirmed(ctx, cust.Email, orderID)
			case StatusCancelled:
				s.notifier.OrderCancelled(ctx, cust.Email, orderID)
			}
		}
	}

	return updated, nil
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID int) ([]Order, error) {
	return s.repo.GetOrdersByCustomer(ctx, customerID)
}

func (s *service) ListGymOrders(ctx context.Context, vendorID, gymID int) ([]OrderWithDetails, error) {
	g, err := s.gymRepo.GetGymByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("gym")
		}
		return nil, err
	}

	if g.OwnerID != vendorID {
		return nil, apperr.Forbidden("you don't have permission to view this gym's orders")
	}

	return s.repo.GetOrdersByGym(ctx, gymID)
}
