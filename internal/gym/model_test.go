package gym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAdded.Valid())
	assert.True(t, StatusPaused.Valid())
	assert.True(t, StatusStopped.Valid())

	assert.False(t, Status("Deleted").Valid())
	assert.False(t, Status("added").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusAcceptingOrders(t *testing.T) {
	assert.True(t, StatusAdded.AcceptingOrders())
	assert.False(t, StatusPaused.AcceptingOrders())
	assert.False(t, StatusStopped.AcceptingOrders())
}
