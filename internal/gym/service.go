package gym

import (
	"context"
	"database/sql"
	"errors"

	"gymslot/internal/apperr"
)

type Service interface {
	AddGym(ctx context.Context, vendorID int, req AddGymRequest) (*Gym, error)
	PauseGym(ctx context.Context, vendorID, gymID int) error
	RemoveGym(ctx context.Context, vendorID, gymID int) error
	AddSlot(ctx context.Context, vendorID, gymID int, req AddSlotRequest) (*Slot, error)
	UpdateSlot(ctx context.Context, vendorID, slotID int, req UpdateSlotRequest) (*Slot, error)
	ListGyms(ctx context.Context) ([]Gym, error)
	ListSlots(ctx context.Context, gymID int, onlyFuture bool) ([]Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddGym(ctx context.Context, vendorID int, req AddGymRequest) (*Gym, error) {
	gym, err := s.repo.CreateGym(ctx, vendorID, req.Name, req.Address, req.Capacity)
	if err != nil {
		if errors.Is(err, ErrGymNameTaken) {
			return nil, apperr.Conflict("gym with this name already exists")
		}
		return nil, err
	}

	return gym, nil
}

func (s *service) PauseGym(ctx context.Context, vendorID, gymID int) error {
	return s.setStatus(ctx, vendorID, gymID, StatusPaused)
}

// RemoveGym soft-stops the gym. In-flight orders are left untouched.
func (s *service) RemoveGym(ctx context.Context, vendorID, gymID int) error {
	return s.setStatus(ctx, vendorID, gymID, StatusStopped)
}

func (s *service) setStatus(ctx context.Context, vendorID, gymID int, status Status) error {
	gym, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("gym")
		}
		return err
	}

	if gym.OwnerID != vendorID {
		return apperr.Forbidden("you don't have permission to update this gym")
	}

	return s.repo.UpdateGymStatus(ctx, gymID, status)
}

func (s *service) AddSlot(ctx context.Context, vendorID, gymID int, req AddSlotRequest) (*Slot, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperr.Validation("start_time", "slot start must be before slot end")
	}

	gym, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("gym")
		}
		return nil, err
	}

	if gym.OwnerID != vendorID {
		return nil, apperr.Forbidden("you don't have permission to update this gym")
	}

	// A fresh slot opens with the gym's full capacity available.
	return s.repo.CreateSlot(ctx, gymID, req.StartTime, req.EndTime, gym.Capacity)
}

func (s *service) UpdateSlot(ctx context.Context, vendorID, slotID int, req UpdateSlotRequest) (*Slot, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperr.Validation("new_start_time", "slot start must be before slot end")
	}

	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("slot")
		}
		return nil, err
	}

	gym, err := s.repo.GetGymByID(ctx, slot.GymID)
	if err != nil {
		return nil, err
	}

	if gym.OwnerID != vendorID {
		return nil, apperr.Forbidden("you don't have permission to update this slot")
	}

	return s.repo.UpdateSlotTimes(ctx, slotID, req.StartTime, req.EndTime)
}

func (s *service) ListGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.ListGyms(ctx)
}

func (s *service) ListSlots(ctx context.Context, gymID int, onlyFuture bool) ([]Slot, error) {
	if _, err := s.repo.GetGymByID(ctx, gymID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("gym")
		}
		return nil, err
	}

	return s.repo.GetSlotsByGym(ctx, gymID, onlyFuture)
}
