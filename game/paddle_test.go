// File: game/paddle_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddle_MoveBy(t *testing.T) {
	testCases := []struct {
		name      string
		dy        float64
		expectedY float64
	}{
		{"down", 15, 240},
		{"up", -15, 210},
		{"none", 0, 225},
		{"clamped at top wall", -1000, 40},
		{"clamped at bottom wall", 1000, 410},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := DefaultCourt().NewPaddle(Player1, 20, 10, 60)
			paddle.MoveBy(tc.dy)
			assert.Equal(t, tc.expectedY, paddle.Cy)
			assert.Equal(t, 20.0, paddle.Cx, "paddles only move vertically")
		})
	}
}

func TestPaddle_MoveToWithoutCourt(t *testing.T) {
	paddle := &Paddle{ID: Player2, Cx: 10, Cy: 10, Width: 10, Height: 60}
	paddle.MoveTo(-500)
	assert.Equal(t, -500.0, paddle.Cy)
}
