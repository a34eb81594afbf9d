package gym

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrGymNameTaken = errors.New("gym with this name already exists")
	ErrGymNotFound  = errors.New("gym not found")
	ErrSlotNotFound = errors.New("slot not found")
)

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGym(ctx context.Context, ownerID int, name, address string, capacity int) (*Gym, error) {
	query := `
		INSERT INTO gyms (owner_id, name, address, capacity, status)
		VALUES ($1, $2, $3, $4, 'Added')
		RETURNING id, owner_id, name, address, capacity, status, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, ownerID, name, address, capacity)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrGymNameTaken
		}
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, owner_id, name, address, capacity, status, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) ListGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, owner_id, name, address, capacity, status, created_at
		FROM gyms
		ORDER BY created_at DESC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) UpdateGymStatus(ctx context.Context, id int, status Status) error {
	query := `
		UPDATE gyms
		SET status = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrGymNotFound
	}

	return nil
}

func (r *repository) CreateSlot(ctx context.Context, gymID int, startTime, endTime time.Time, availableCapacity int) (*Slot, error) {
	query := `
		INSERT INTO slots (gym_id, start_time, end_time, available_capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, start_time, end_time, available_capacity, created_at
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, gymID, startTime, endTime, availableCapacity)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetSlotByID(ctx context.Context, id int) (*Slot, error) {
	query := `
		SELECT id, gym_id, start_time, end_time, available_capacity, created_at
		FROM slots
		WHERE id = $1
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetSlotsByGym(ctx context.Context, gymID int, onlyFuture bool) ([]Slot, error) {
	query := `
		SELECT id, gym_id, start_time, end_time, available_capacity, created_at
		FROM slots
		WHERE gym_id = $1
	`

	if onlyFuture {
		query += " AND start_time > NOW()"
	}

	query += " ORDER BY start_time ASC"

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, gymID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) UpdateSlotTimes(ctx context.Context, id int, startTime, endTime time.Time) (*Slot, error) {
	query := `
		UPDATE slots
		SET start_time = $2, end_time = $3
		WHERE id = $1
		RETURNING id, gym_id, start_time, end_time, available_capacity, created_at
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id, startTime, endTime)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
