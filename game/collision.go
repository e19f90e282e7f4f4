package game

// CheckWallCollision reports whether the ball has reached wall's facing edge.
// Unknown wall ids never collide.
func (ball *Ball) CheckWallCollision(wall Wall) bool {
	switch wall.ID {
	case WallRight:
		return ball.Right() > wall.Left()
	case WallLeft:
		return ball.Left() < wall.Right()
	case WallTop:
		return ball.Top() < wall.Bottom()
	case WallBottom:
		return ball.Bottom() > wall.Top()
	}
	ball.log.Debug("collision check against unknown wall", "wall", int(wall.ID))
	return false
}

// CheckPaddleCollision reports whether the ball overlaps paddle: past the
// paddle's court-facing edge on the paddle's side, and vertically within it.
func (ball *Ball) CheckPaddleCollision(paddle *Paddle) bool {
	if paddle == nil {
		return false
	}

	verticalOverlap := ball.Bottom() > paddle.Top() && ball.Top() < paddle.Bottom()

	switch paddle.ID {
	case Player2:
		return ball.Right() > paddle.Left() && verticalOverlap
	case Player1:
		return ball.Left() < paddle.Right() && verticalOverlap
	}
	ball.log.Debug("collision check against unknown paddle", "player", int(paddle.ID))
	return false
}

// OnPaddleCollision flips the ball's parity, which reverses its travel on
// the next Update. Nothing else changes.
func (ball *Ball) OnPaddleCollision(player PlayerID) {
	if !player.Valid() {
		ball.log.Debug("paddle collision from unknown player ignored", "player", int(player))
		return
	}
	ball.parity = ball.parity.Flip()
}

// OnWallCollision reacts to a wall hit. Left and Right are points: the ball
// goes back to its origin heading away from the side it left through. Top
// and Bottom pick a new vertical direction from the bounce table.
func (ball *Ball) OnWallCollision(wall WallID) {
	switch wall {
	case WallRight:
		ball.directionX = -1
		ball.reset()
	case WallLeft:
		ball.reset()
		ball.directionX = 1
	case WallTop, WallBottom:
		ball.directionY = ball.bounceDirection()
	default:
		ball.log.Debug("wall collision from unknown wall ignored", "wall", int(wall))
	}
}
