package colors

// package colors contains functions to quickly and easily generate trackball.Color instances by name (i.e. "White()", "Blue()", "Gray()", etc).

import "github.com/solarlune/trackball"

// White generates a trackball.Color instance of the provided name.
func White() trackball.Color {
	return trackball.NewColor(1, 1, 1, 1)
}

// Black generates a trackball.Color instance of the provided name.
func Black() trackball.Color {
	return trackball.NewColor(0, 0, 0, 1)
}

// Gray generates a trackball.Color instance of the provided name.
func Gray() trackball.Color {
	return trackball.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates a trackball.Color instance of the provided name.
func LightGray() trackball.Color {
	return trackball.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a trackball.Color instance of the provided name.
func DarkGray() trackball.Color {
	return trackball.NewColor(0.25, 0.25, 0.25, 1)
}

// Blue generates a trackball.Color instance of the provided name.
func Blue() trackball.Color {
	return trackball.NewColor(0, 0, 1, 1)
}

// SkyBlue generates a trackball.Color instance of the provided name.
func SkyBlue() trackball.Color {
	return trackball.NewColor(0, 0.5, 1, 1)
}

// Red generates a trackball.Color instance of the provided name.
func Red() trackball.Color {
	return trackball.NewColor(1, 0, 0, 1)
}
