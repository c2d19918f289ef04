// math32 is a stand-in for the built-in math package, but the functions take float32s instead of float64s.
// Quaternions, vectors, and matrices in the trackball package are all single precision, so this keeps conversions out of the math itself.
package math32

import (
	"math"
)

const MaxFloat32 = float32(math.MaxFloat32)

const Pi = math.Pi

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return x != x
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
// If sign is 0, IsInf reports if x is either infinity.
func IsInf(x float32, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
