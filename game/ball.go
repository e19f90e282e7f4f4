package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var (
	ErrInvalidSpeed = errors.New("ball speed must be a finite non-zero number")
	ErrInvalidSize  = errors.New("ball size must be positive")
)

// Parity records whether the ball travels along its directions or against
// them. A paddle hit flips it.
type Parity int

const (
	Forward  Parity = 1
	Reversed Parity = -1
)

func (p Parity) Sign() float64 {
	if p == Reversed {
		return -1
	}
	return 1
}

func (p Parity) Flip() Parity {
	if p == Reversed {
		return Forward
	}
	return Reversed
}

func (p Parity) String() string {
	if p == Reversed {
		return "reversed"
	}
	return "forward"
}

// Ball is the moving game object: an axis-aligned rectangle given by its
// center and extents.
//
// Detection (CheckWallCollision, CheckPaddleCollision) never mutates the
// ball. A reaction (OnWallCollision, OnPaddleCollision) must only follow a
// true detection, before anything else moves the ball.
type Ball struct {
	originX, originY float64
	cx, cy           float64
	width, height    float64
	directionX       int
	directionY       int
	magnitude        float64
	parity           Parity
	color            [3]int
	court            Court
	log              *slog.Logger
}

// BallOption customises NewBall.
type BallOption func(*Ball)

// WithDirection sets the initial travel signs. Any non-negative value is
// taken as +1, negative as -1.
func WithDirection(dx, dy int) BallOption {
	return func(b *Ball) {
		b.directionX = unitSign(dx)
		b.directionY = unitSign(dy)
	}
}

func WithColor(color [3]int) BallOption {
	return func(b *Ball) { b.color = color }
}

// WithBallLogger sets where unrecognised collision ids are reported at debug level.
func WithBallLogger(logger *slog.Logger) BallOption {
	return func(b *Ball) {
		if logger != nil {
			b.log = logger
		}
	}
}

// NewBall creates a ball centered at (cx, cy), which is also its reset
// position. speed is pixels per millisecond in the inverted sense of Update;
// a negative speed starts the ball with Reversed parity.
func NewBall(cx, cy, width, height, speed float64, court Court, opts ...BallOption) (*Ball, error) {
	if speed == 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}

	parity := Forward
	if speed < 0 {
		parity = Reversed
	}

	ball := &Ball{
		originX:    cx,
		originY:    cy,
		cx:         cx,
		cy:         cy,
		width:      width,
		height:     height,
		directionX: 1,
		directionY: 1,
		magnitude:  math.Abs(speed),
		parity:     parity,
		color:      [3]int{255, 255, 255},
		court:      court,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(ball)
	}
	return ball, nil
}

// Update advances the ball by elapsed milliseconds:
// step = (elapsed / Speed()) / 10 along each direction. A larger speed
// moves the ball slower, and Reversed parity moves it against its
// directions. Negative elapsed is treated as zero.
func (b *Ball) Update(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	step := (elapsed / b.Speed()) / 10
	b.cx += step * float64(b.directionX)
	b.cy += step * float64(b.directionY)
}

func (b *Ball) Cx() float64 { return b.cx }
func (b *Ball) Cy() float64 { return b.cy }

// Speed is the signed speed: the magnitude carrying the parity sign.
func (b *Ball) Speed() float64 { return b.magnitude * b.parity.Sign() }

func (b *Ball) Magnitude() float64         { return b.magnitude }
func (b *Ball) Parity() Parity             { return b.parity }
func (b *Ball) Direction() (int, int)      { return b.directionX, b.directionY }
func (b *Ball) Origin() (float64, float64) { return b.originX, b.originY }
func (b *Ball) Width() float64             { return b.width }
func (b *Ball) Height() float64            { return b.height }
func (b *Ball) Color() [3]int              { return b.color }
func (b *Ball) Court() Court               { return b.court }

func (b *Ball) Left() float64   { return b.cx - b.width/2 }
func (b *Ball) Right() float64  { return b.cx + b.width/2 }
func (b *Ball) Top() float64    { return b.cy - b.height/2 }
func (b *Ball) Bottom() float64 { return b.cy + b.height/2 }

func (b *Ball) reset() {
	b.cx = b.originX
	b.cy = b.originY
}

// bounceDirection picks the vertical direction after a top or bottom wall
// hit from the speed sign and the court quadrant the ball is in.
func (b *Ball) bounceDirection() int {
	below := b.cy > b.court.SplitY

	if b.Speed() > 0 {
		if b.cx >= b.court.SplitX {
			if below {
				return -1
			}
			return 1
		}
		if below {
			return -1
		}
		return 1
	}

	if b.cx >= b.court.SplitX {
		if below {
			return 1
		}
		return -1
	}
	if below {
		return 1
	}
	return -1
}

func unitSign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
