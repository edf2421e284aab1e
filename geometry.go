package colorwheel

import "math"

// Vector is a 2D coordinate pair.
//
// A Vector carries no frame tag: the same type is used for canvas
// coordinates (origin top-left, y down) and cartesian coordinates
// (origin at the wheel center, y up). Callers track which frame a
// value is in.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Length returns the euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// PolarPoint is an angle in radians plus a distance from the origin,
// in the same unit as the canvas.
type PolarPoint struct {
	Theta, Radius float64
}

// CanvasToCartesian moves v from the canvas frame into the cartesian
// frame centered on center, flipping the y axis.
func CanvasToCartesian(v, center Vector) Vector {
	return Vector{
		X: v.X - center.X,
		Y: -(v.Y - center.Y),
	}
}

// CartesianToCanvas is the inverse of CanvasToCartesian.
func CartesianToCanvas(v, center Vector) Vector {
	return Vector{
		X: v.X + center.X,
		Y: -v.Y + center.Y,
	}
}

// CartesianToPolar converts a cartesian vector to polar form.
// Theta is in (-π, π]; the origin maps to {0, 0}.
func CartesianToPolar(v Vector) PolarPoint {
	return PolarPoint{
		Theta:  math.Atan2(v.Y, v.X),
		Radius: math.Sqrt(v.X*v.X + v.Y*v.Y),
	}
}

// PolarToCartesian converts a polar point to a cartesian vector.
func PolarToCartesian(p PolarPoint) Vector {
	return Vector{
		X: p.Radius * math.Cos(p.Theta),
		Y: p.Radius * math.Sin(p.Theta),
	}
}

// PolarToCanvas converts a polar point around center to canvas coordinates.
func PolarToCanvas(p PolarPoint, center Vector) Vector {
	return CartesianToCanvas(PolarToCartesian(p), center)
}

// CanvasToPolar converts a canvas position to a polar point around center.
func CanvasToPolar(v, center Vector) PolarPoint {
	return CartesianToPolar(CanvasToCartesian(v, center))
}

// ToRadian converts degrees to radians.
func ToRadian(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegree converts radians to degrees.
func ToDegree(rad float64) float64 {
	return rad * 180 / math.Pi
}
