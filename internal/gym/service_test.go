package gym

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gymslot/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) CreateGym(ctx context.Context, ownerID int, name, address string, capacity int) (*Gym, error) {
	args := m.Called(ctx, ownerID, name, address, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) ListGyms(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockRepo) UpdateGymStatus(ctx context.Context, id int, status Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockRepo) CreateSlot(ctx context.Context, gymID int, startTime, endTime time.Time, availableCapacity int) (*Slot, error) {
	args := m.Called(ctx, gymID, startTime, endTime, availableCapacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepo) GetSlotByID(ctx context.Context, id int) (*Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepo) GetSlotsByGym(ctx context.Context, gymID int, onlyFuture bool) ([]Slot, error) {
	args := m.Called(ctx, gymID, onlyFuture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepo) UpdateSlotTimes(ctx context.Context, id int, startTime, endTime time.Time) (*Slot, error) {
	args := m.Called(ctx, id, startTime, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func ownedGym(id, ownerID int) *Gym {
	return &Gym{ID: id, OwnerID: ownerID, Name: "Iron Temple", Address: "12 Main St", Capacity: 20, Status: StatusAdded}
}

func TestAddGym(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateGym", mock.Anything, 7, "Iron Temple", "12 Main St", 20).
		Return(ownedGym(1, 7), nil)

	svc := NewService(repo)

	gym, err := svc.AddGym(context.Background(), 7, AddGymRequest{Name: "Iron Temple", Address: "12 Main St", Capacity: 20})
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, gym.Status)
	assert.Equal(t, 7, gym.OwnerID)
}

func TestAddGymDuplicateName(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateGym", mock.Anything, 7, "Iron Temple", "12 Main St", 20).
		Return(nil, ErrGymNameTaken)

	svc := NewService(repo)

	_, err := svc.AddGym(context.Background(), 7, AddGymRequest{Name: "Iron Temple", Address: "12 Main St", Capacity: 20})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, 400, apperr.HTTPStatus(err))
}

func TestPauseGymByNonOwner(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetGymByID", mock.Anything, 1).Return(ownedGym(1, 7), nil)

	svc := NewService(repo)

	// Vendor 8 does not own gym 1; the status update must never run.
	err := svc.PauseGym(context.Background(), 8, 1)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	repo.AssertNotCalled(t, "UpdateGymStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPauseAndRemoveGymByOwner(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetGymByID", mock.Anything, 1).Return(ownedGym(1, 7), nil)
	repo.On("UpdateGymStatus", mock.Anything, 1, StatusPaused).Return(nil)
	repo.On("UpdateGymStatus", mock.Anything, 1, StatusStopped).Return(nil)

	svc := NewService(repo)

	require.NoError(t, svc.PauseGym(context.Background(), 7, 1))
	require.NoError(t, svc.RemoveGym(context.Background(), 7, 1))

	repo.AssertExpectations(t)
}

func TestPauseGymNotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetGymByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	svc := NewService(repo)

	err := svc.PauseGym(context.Background(), 7, 99)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAddSlotInheritsGymCapacity(t *testing.T) {
	repo := new(MockRepo)
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	repo.On("GetGymByID", mock.Anything, 1).Return(ownedGym(1, 7), nil)
	repo.On("CreateSlot", mock.Anything, 1, start, end, 20).
		Return(&Slot{ID: 5, GymID: 1, StartTime: start, EndTime: end, AvailableCapacity: 20}, nil)

	svc := NewService(repo)

	slot, err := svc.AddSlot(context.Background(), 7, 1, AddSlotRequest{StartTime: start, EndTime: end})
	require.NoError(t, err)
	assert.Equal(t, 20, slot.AvailableCapacity)
}

func TestAddSlotInvalidWindow(t *testing.T) {
	svc := NewService(new(MockRepo))
	start := time.Now().Add(24 * time.Hour)

	_, err := svc.AddSlot(context.Background(), 7, 1, AddSlotRequest{StartTime: start, EndTime: start})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.AddSlot(context.Background(), 7, 1, AddSlotRequest{StartTime: start, EndTime: start.Add(-time.Hour)})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateSlotOwnership(t *testing.T) {
	repo := new(MockRepo)
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	repo.On("GetSlotByID", mock.Anything, 5).Return(&Slot{ID: 5, GymID: 1}, nil)
	repo.On("GetGymByID", mock.Anything, 1).Return(ownedGym(1, 7), nil)

	svc := NewService(repo)

	_, err := svc.UpdateSlot(context.Background(), 8, 5, UpdateSlotRequest{StartTime: start, EndTime: end})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	repo.AssertNotCalled(t, "UpdateSlotTimes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSlotNotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetSlotByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	svc := NewService(repo)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.UpdateSlot(context.Background(), 7, 99, UpdateSlotRequest{StartTime: start, EndTime: start.Add(time.Hour)})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
