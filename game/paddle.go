// File: game/paddle.go
package game

// Paddle is a player-controlled rectangle the ball bounces off.
type Paddle struct {
	ID     PlayerID `json:"id"`
	Cx     float64  `json:"cx"`
	Cy     float64  `json:"cy"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	court  Court
}

func (p *Paddle) Left() float64   { return p.Cx - p.Width/2 }
func (p *Paddle) Right() float64  { return p.Cx + p.Width/2 }
func (p *Paddle) Top() float64    { return p.Cy - p.Height/2 }
func (p *Paddle) Bottom() float64 { return p.Cy + p.Height/2 }

// MoveBy shifts the paddle vertically by dy, clamped between the top and
// bottom walls.
func (p *Paddle) MoveBy(dy float64) {
	p.MoveTo(p.Cy + dy)
}

// MoveTo centers the paddle at cy, clamped between the top and bottom walls.
// A paddle without a court is not clamped.
func (p *Paddle) MoveTo(cy float64) {
	if p.court.Height <= 0 {
		p.Cy = cy
		return
	}

	minCy := p.court.WallThickness + p.Height/2
	maxCy := p.court.Height - p.court.WallThickness - p.Height/2

	if cy < minCy {
		cy = minCy
	}
	if cy > maxCy {
		cy = maxCy
	}
	p.Cy = cy
}
