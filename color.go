package trackball

import (
	"image/color"

	"github.com/solarlune/trackball/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Multiply returns a copy of the Color with its R, G, and B components multiplied by the value given.
func (c Color) Multiply(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// ToRGBA64 converts the Color to a color.RGBA64, clamping each component to the 0-1 range first.
func (c Color) ToRGBA64() color.RGBA64 {
	return color.RGBA64{
		R: uint16(math32.Clamp(c.R, 0, 1) * c.alpha() * 65535),
		G: uint16(math32.Clamp(c.G, 0, 1) * c.alpha() * 65535),
		B: uint16(math32.Clamp(c.B, 0, 1) * c.alpha() * 65535),
		A: uint16(c.alpha() * 65535),
	}
}

func (c Color) alpha() float32 {
	return math32.Clamp(c.A, 0, 1)
}
