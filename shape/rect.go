// Package shape holds simple geometric records.
package shape

// Rect is an axis aligned rectangle.
type Rect struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}
