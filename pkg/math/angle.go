package math

import gomath "math"

// Pi as float32.
const Pi = float32(gomath.Pi)

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * (180 / Pi)
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (Pi / 180)
}

// Sin evaluates the sine in float64 and narrows the result, so pose
// curves match values computed with double precision trig.
func Sin(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}

// Cos is the cosine counterpart of Sin.
func Cos(x float32) float32 {
	return float32(gomath.Cos(float64(x)))
}

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
