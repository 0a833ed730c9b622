package widgets

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// FlightScaleFactor shrinks the clone below the cart icon size.
	FlightScaleFactor = 0.65

	DefaultCleanupDelay = 600 * time.Millisecond
	DefaultSubmitDelay  = 350 * time.Millisecond
	DefaultFlashTimeout = 5000 * time.Millisecond
)

// Rect is an element box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center returns the box centre.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Flight describes the one-shot transform applied to the product image clone
// so it lands on the cart icon.
type Flight struct {
	From       Rect
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// PlanFlight computes the translation between the two centres and the scale
// that fits the image inside the cart icon. A zero-sized image keeps scale 1.
func PlanFlight(image, cart Rect) Flight {
	ix, iy := image.Center()
	cx, cy := cart.Center()

	scale := 1.0
	if image.Width > 0 && image.Height > 0 {
		scale = math.Min(cart.Width/image.Width, cart.Height/image.Height) * FlightScaleFactor
	}
	return Flight{
		From:       image,
		TranslateX: cx - ix,
		TranslateY: cy - iy,
		Scale:      scale,
	}
}

// Transform returns the CSS transform for the end of the flight.
func (f Flight) Transform() string {
	return fmt.Sprintf("translate(%spx, %spx) scale(%s)", num(f.TranslateX), num(f.TranslateY), num(f.Scale))
}

// StartStyle returns the inline style placing the clone over the image.
func (f Flight) StartStyle() map[string]string {
	return map[string]string{
		"left":    num(f.From.Left) + "px",
		"top":     num(f.From.Top) + "px",
		"width":   num(f.From.Width) + "px",
		"height":  num(f.From.Height) + "px",
		"opacity": "1",
	}
}

// EndStyle returns the inline style the clone animates to.
func (f Flight) EndStyle() map[string]string {
	return map[string]string{
		"transform": f.Transform(),
		"opacity":   "0",
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
