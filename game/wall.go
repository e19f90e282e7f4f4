package game

// Wall is a static boundary of the court.
type Wall struct {
	ID     WallID  `json:"id"`
	Cx     float64 `json:"cx"`
	Cy     float64 `json:"cy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (w Wall) Left() float64   { return w.Cx - w.Width/2 }
func (w Wall) Right() float64  { return w.Cx + w.Width/2 }
func (w Wall) Top() float64    { return w.Cy - w.Height/2 }
func (w Wall) Bottom() float64 { return w.Cy + w.Height/2 }
