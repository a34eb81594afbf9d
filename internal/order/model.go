package order

import (
	"fmt"
	"time"
)

// Status is the order lifecycle state. Statuses in the holding set reserve
// one unit of slot capacity; Failed and Cancelled are terminal and hold
// nothing.
type Status string

const (
	StatusCreated    Status = "Created"
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusConfirmed  Status = "Confirmed"
	StatusFailed     Status = "Failed"
	StatusCancelled  Status = "Cancelled"
)

// holdingRank orders the capacity-holding statuses along the forward chain
// Created -> Pending -> Processing -> Confirmed.
var holdingRank = map[Status]int{
	StatusCreated:    0,
	StatusPending:    1,
	StatusProcessing: 2,
	StatusConfirmed:  3,
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusCreated, StatusPending, StatusProcessing, StatusConfirmed, StatusFailed, StatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Holding reports whether the status reserves slot capacity.
func (s Status) Holding() bool {
	_, ok := holdingRank[s]
	return ok
}

// Terminal reports whether the status is absorbing: no transition leaves it.
func (s Status) Terminal() bool {
	return s == StatusFailed || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to
// another. Transitioning into the current status is allowed as a no-op.
func CanTransition(from, to Status) bool {
	switch {
	case from == to:
		return true
	case from.Terminal():
		return false
	case to.Terminal():
		return true
	case from.Holding() && to.Holding():
		return holdingRank[to] > holdingRank[from]
	default:
		return false
	}
}

// externallySettable is the target set accepted on the public
// update_order_status surface. Failed is reachable only internally.
var externallySettable = map[Status]bool{
	StatusCreated:   true,
	StatusConfirmed: true,
	StatusCancelled: true,
}

func ExternallySettable(s Status) bool {
	return externallySettable[s]
}

type Order struct {
	ID         int       `db:"id" json:"id"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	GymID      int       `db:"gym_id" json:"gym_id"`
	SlotID     int       `db:"slot_id" json:"slot_id"`
	OrderTime  time.Time `db:"order_time" json:"order_time"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type OrderWithDetails struct {
	Order
	SlotStart     time.Time `db:"slot_start" json:"slot_start"`
	SlotEnd       time.Time `db:"slot_end" json:"slot_end"`
	GymName       string    `db:"gym_name" json:"gym_name"`
	CustomerEmail string    `db:"customer_email" json:"customer_email"`
}

// CreateOrderRequest mirrors the wire shape. The server overrides any
// client-supplied order_time and status.
type CreateOrderRequest struct {
	CustomerID int       `json:"customer_id" binding:"required"`
	GymID      int       `json:"gym_id" binding:"required"`
	SlotID     int       `json:"slot_id" binding:"required"`
	OrderTime  time.Time `json:"order_time" binding:"required"`
	Status     string    `json:"status"`
}
