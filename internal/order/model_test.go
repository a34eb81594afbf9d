package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Created", "Pending", "Processing", "Confirmed", "Failed", "Cancelled"} {
		status, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), status)
	}

	_, err := ParseStatus("Booked")
	assert.Error(t, err)

	_, err = ParseStatus("created")
	assert.Error(t, err, "status parsing is case sensitive")
}

func TestStatusSets(t *testing.T) {
	holding := []Status{StatusCreated, StatusPending, StatusProcessing, StatusConfirmed}
	terminal := []Status{StatusFailed, StatusCancelled}

	for _, s := range holding {
		assert.True(t, s.Holding(), "%s should hold capacity", s)
		assert.False(t, s.Terminal())
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "%s should be terminal", s)
		assert.False(t, s.Holding())
	}
}

func TestCanTransitionForwardChain(t *testing.T) {
	assert.True(t, CanTransition(StatusCreated, StatusPending))
	assert.True(t, CanTransition(StatusCreated, StatusConfirmed))
	assert.True(t, CanTransition(StatusPending, StatusProcessing))
	assert.True(t, CanTransition(StatusProcessing, StatusConfirmed))

	// No moving backwards between holding statuses.
	assert.False(t, CanTransition(StatusConfirmed, StatusCreated))
	assert.False(t, CanTransition(StatusProcessing, StatusPending))
}

func TestCanTransitionTerminal(t *testing.T) {
	for _, from := range []Status{StatusCreated, StatusPending, StatusProcessing, StatusConfirmed} {
		assert.True(t, CanTransition(from, StatusFailed))
		assert.True(t, CanTransition(from, StatusCancelled))
	}

	// Terminal statuses absorb: nothing leaves them.
	for _, from := range []Status{StatusFailed, StatusCancelled} {
		for _, to := range []Status{StatusCreated, StatusPending, StatusProcessing, StatusConfirmed} {
			assert.False(t, CanTransition(from, to), "%s -> %s must be rejected", from, to)
		}
	}
	assert.False(t, CanTransition(StatusCancelled, StatusFailed))
	assert.False(t, CanTransition(StatusFailed, StatusCancelled))
}

func TestCanTransitionSameStatusIsNoOp(t *testing.T) {
	for _, s := range []Status{StatusCreated, StatusPending, StatusProcessing, StatusConfirmed, StatusFailed, StatusCancelled} {
		assert.True(t, CanTransition(s, s))
	}
}

func TestExternallySettable(t *testing.T) {
	assert.True(t, ExternallySettable(StatusCreated))
	assert.True(t, ExternallySettable(StatusConfirmed))
	assert.True(t, ExternallySettable(StatusCancelled))

	assert.False(t, ExternallySettable(StatusFailed))
	assert.False(t, ExternallySettable(StatusPending))
	assert.False(t, ExternallySettable(StatusProcessing))
}
