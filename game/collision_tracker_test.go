// File: game/collision_tracker_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionTracker_Begin(t *testing.T) {
	tracker := NewCollisionTracker()
	paddle := PaddleContact(Player1)
	wall := WallContact(WallTop)

	assert.True(t, tracker.Begin(paddle), "first Begin should report a new contact")
	assert.True(t, tracker.Active(paddle))
	assert.False(t, tracker.Begin(paddle), "second Begin should report an ongoing contact")

	assert.True(t, tracker.Begin(wall), "a different key is a new contact")
	assert.Equal(t, 2, tracker.Len())
}

func TestCollisionTracker_End(t *testing.T) {
	tracker := NewCollisionTracker()
	key := WallContact(WallBottom)

	tracker.Begin(key)
	tracker.End(key)
	assert.False(t, tracker.Active(key))
	assert.True(t, tracker.Begin(key), "contact can start again after it ended")

	tracker.End(PaddleContact(Player2)) // never started
	assert.False(t, tracker.Active(PaddleContact(Player2)))
}

func TestCollisionTracker_KeysDoNotCollide(t *testing.T) {
	tracker := NewCollisionTracker()
	tracker.Begin(WallContact(WallTop))

	assert.False(t, tracker.Active(PaddleContact(PlayerID(WallTop))))
}

func TestCollisionTracker_Clear(t *testing.T) {
	tracker := NewCollisionTracker()
	tracker.Begin(WallContact(WallTop))
	tracker.Begin(PaddleContact(Player1))

	tracker.Clear()

	assert.Equal(t, 0, tracker.Len())
	assert.False(t, tracker.Active(WallContact(WallTop)))
	assert.True(t, tracker.Begin(PaddleContact(Player1)))
}
