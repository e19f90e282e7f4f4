package utils

import "time"

const (
	Period = 16 * time.Millisecond

	CourtWidth    = 800.0
	CourtHeight   = 450.0
	WallThickness = 10.0

	// INFO Quadrant thresholds of the top/bottom bounce table, not the court center.
	BounceSplitX = 370.0
	BounceSplitY = 225.0

	BallSize  = 10.0
	BallSpeed = 0.2

	PaddleWidth  = 10.0
	PaddleHeight = 60.0
	PaddleInset  = 20.0

	WinningScore = 10

	EnvPrefix = "PONG_"
)
