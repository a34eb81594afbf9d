package gym

import "time"

// Status is the gym lifecycle state. Gyms are never hard-deleted; removal
// sets the status to Stopped.
type Status string

const (
	StatusAdded   Status = "Added"
	StatusPaused  Status = "Paused"
	StatusStopped Status = "Stopped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAdded, StatusPaused, StatusStopped:
		return true
	}
	return false
}

// AcceptingOrders reports whether new orders may be placed against the gym's
// slots. Paused and Stopped gyms keep their existing orders untouched.
func (s Status) AcceptingOrders() bool {
	return s == StatusAdded
}

type Gym struct {
	ID        int       `db:"id" json:"id"`
	OwnerID   int       `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Capacity  int       `db:"capacity" json:"capacity"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Slot is a bookable window of gym time. AvailableCapacity starts at the
// gym's capacity and is mutated only by the order engine.
type Slot struct {
	ID                int       `db:"id" json:"id"`
	GymID             int       `db:"gym_id" json:"gym_id"`
	StartTime         time.Time `db:"start_time" json:"start_time"`
	EndTime           time.Time `db:"end_time" json:"end_time"`
	AvailableCapacity int       `db:"available_capacity" json:"available_capacity"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type AddGymRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type AddSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required,future"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateSlotRequest struct {
	StartTime time.Time `json:"new_start_time" binding:"required"`
	EndTime   time.Time `json:"new_end_time" binding:"required"`
}
