// File: game/court.go
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/lguibr/pongcore/utils"
)

// ErrInvalidCourt is wrapped by Court.Validate failures.
var ErrInvalidCourt = errors.New("invalid court")

// Court describes the play area. SplitX and SplitY are the thresholds of the
// top/bottom bounce table.
type Court struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	WallThickness float64 `json:"wallThickness"`
	SplitX        float64 `json:"splitX"`
	SplitY        float64 `json:"splitY"`
}

// DefaultCourt is the 800x450 court with 10px walls.
func DefaultCourt() Court {
	return Court{
		Width:         utils.CourtWidth,
		Height:        utils.CourtHeight,
		WallThickness: utils.WallThickness,
		SplitX:        utils.BounceSplitX,
		SplitY:        utils.BounceSplitY,
	}
}

// CourtFromConfig reads the court fields of cfg.
func CourtFromConfig(cfg utils.Config) Court {
	return Court{
		Width:         cfg.CourtWidth,
		Height:        cfg.CourtHeight,
		WallThickness: cfg.WallThickness,
		SplitX:        cfg.BounceSplitX,
		SplitY:        cfg.BounceSplitY,
	}
}

func (c Court) Validate() error {
	for name, v := range map[string]float64{"width": c.Width, "height": c.Height, "wall thickness": c.WallThickness} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidCourt, name, v)
		}
	}
	if 2*c.WallThickness >= c.Width || 2*c.WallThickness >= c.Height {
		return fmt.Errorf("%w: walls leave no play area", ErrInvalidCourt)
	}
	return nil
}

// Center is the serve position.
func (c Court) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}

// Wall returns the wall for id, flush with the court border. ok is false for
// an unknown id.
func (c Court) Wall(id WallID) (wall Wall, ok bool) {
	t := c.WallThickness
	switch id {
	case WallTop:
		return Wall{ID: id, Cx: c.Width / 2, Cy: t / 2, Width: c.Width, Height: t}, true
	case WallBottom:
		return Wall{ID: id, Cx: c.Width / 2, Cy: c.Height - t/2, Width: c.Width, Height: t}, true
	case WallLeft:
		return Wall{ID: id, Cx: t / 2, Cy: c.Height / 2, Width: t, Height: c.Height}, true
	case WallRight:
		return Wall{ID: id, Cx: c.Width - t/2, Cy: c.Height / 2, Width: t, Height: c.Height}, true
	}
	return Wall{}, false
}

// Walls returns the four walls in WallIDs order.
func (c Court) Walls() [4]Wall {
	var walls [4]Wall
	for i, id := range WallIDs {
		walls[i], _ = c.Wall(id)
	}
	return walls
}

// NewPaddle places a paddle vertically centered, inset from its own side:
// Player1 on the left, Player2 on the right.
func (c Court) NewPaddle(id PlayerID, inset, width, height float64) *Paddle {
	cx := inset
	if id == Player2 {
		cx = c.Width - inset
	}
	return &Paddle{
		ID:     id,
		Cx:     cx,
		Cy:     c.Height / 2,
		Width:  width,
		Height: height,
		court:  c,
	}
}
