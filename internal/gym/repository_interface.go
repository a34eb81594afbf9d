package gym

import (
	"context"
	"time"
)

type Repository interface {
	CreateGym(ctx context.Context, ownerID int, name, address string, capacity int) (*Gym, error)
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	ListGyms(ctx context.Context) ([]Gym, error)
	UpdateGymStatus(ctx context.Context, id int, status Status) error

	CreateSlot(ctx context.Context, gymID int, startTime, endTime time.Time, availableCapacity int) (*Slot, error)
	GetSlotByID(ctx context.Context, id int) (*Slot, error)
	GetSlotsByGym(ctx context.Context, gymID int, onlyFuture bool) ([]Slot, error)
	UpdateSlotTimes(ctx context.Context, id int, startTime, endTime time.Time) (*Slot, error)
}
