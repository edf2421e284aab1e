package colorwheel

import (
	"math"
	"time"
)

// Curve maps the time since an animation started to normalized progress,
// where 0 is the start value and 1 is the target. Progress may overshoot
// 1 for spring-like curves. done reports that the animation has settled;
// from then on the animated value equals its target exactly.
//
// Curve is the seam between the wheel and the host's animation system:
// hosts with their own interpolation primitives can supply them through
// WithTimingCurve and WithSpringCurve.
type Curve interface {
	Progress(elapsed time.Duration) (p float64, done bool)
}

// Easing maps linear time t in [0, 1] to eased progress.
type Easing func(t float64) float64

// EaseInOutQuad accelerates through the first half and decelerates
// through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Timing is a time-based easing transition of fixed duration.
type Timing struct {
	Duration time.Duration
	Easing   Easing // nil means Linear
}

// DefaultTiming is the transition used for idle-state thumb and swatch
// synchronization.
var DefaultTiming = Timing{Duration: 300 * time.Millisecond, Easing: EaseInOutQuad}

// Progress implements Curve.
func (c Timing) Progress(elapsed time.Duration) (float64, bool) {
	if c.Duration <= 0 || elapsed >= c.Duration {
		return 1, true
	}
	if elapsed <= 0 {
		return 0, false
	}
	t := float64(elapsed) / float64(c.Duration)
	if c.Easing == nil {
		return t, false
	}
	return c.Easing(t), false
}

// Spring is a damped harmonic oscillator released from rest at the start
// value, evaluated in closed form. It settles when both the remaining
// displacement and the velocity fall below the rest thresholds, which are
// expressed relative to a unit step.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	RestDisplacement float64
	RestSpeed        float64 // per second
}

// DefaultSpring is the spring used for the snap-to-center thumb motion and
// idle thumb color changes.
var DefaultSpring = Spring{
	Stiffness:        180,
	Damping:          22,
	Mass:             1,
	RestDisplacement: 1e-3,
	RestSpeed:        1e-3,
}

// Progress implements Curve.
func (c Spring) Progress(elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	if c.Stiffness <= 0 || c.Mass <= 0 {
		return 1, true
	}
	t := elapsed.Seconds()
	x := c.displacement(t)
	const h = 1e-3
	v := (c.displacement(t+h) - x) / h
	if math.Abs(x) < c.RestDisplacement && math.Abs(v) < c.RestSpeed {
		return 1, true
	}
	return 1 - x, false
}

// displacement returns the remaining distance to the target at time t for
// a unit step with zero initial velocity.
func (c Spring) displacement(t float64) float64 {
	w0 := math.Sqrt(c.Stiffness / c.Mass)
	zeta := c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * w0 * t)
		return env * (math.Cos(wd*t) + zeta*w0/wd*math.Sin(wd*t))
	case zeta == 1:
		return math.Exp(-w0*t) * (1 + w0*t)
	default:
		s := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - s)
		r2 := -w0 * (zeta + s)
		c1 := r2 / (r2 - r1)
		c2 := -r1 / (r2 - r1)
		return c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
}

// AnimatedValue is a scalar that either holds still or moves toward a
// target along a Curve. The zero value holds 0.
//
// AnimatedValue is not safe for concurrent use.
type AnimatedValue struct {
	from  float64
	to    float64
	start time.Time
	curve Curve
}

// Set jumps to v immediately, cancelling any animation.
func (a *AnimatedValue) Set(v float64) {
	a.from = v
	a.to = v
	a.curve = nil
}

// AnimateTo starts moving toward v along curve, beginning from the value
// at now. A nil curve behaves like Set.
func (a *AnimatedValue) AnimateTo(v float64, curve Curve, now time.Time) {
	if curve == nil {
		a.Set(v)
		return
	}
	a.from = a.Value(now)
	a.to = v
	a.start = now
	a.curve = curve
}

// Value returns the value at now.
func (a *AnimatedValue) Value(now time.Time) float64 {
	if a.curve == nil {
		return a.to
	}
	p, done := a.curve.Progress(now.Sub(a.start))
	if done {
		return a.to
	}
	return a.from + (a.to-a.from)*p
}

// Target returns the value the animation is heading to.
func (a *AnimatedValue) Target() float64 {
	return a.to
}

// Animating reports whether the value is still moving at now.
func (a *AnimatedValue) Animating(now time.Time) bool {
	if a.curve == nil {
		return false
	}
	_, done := a.curve.Progress(now.Sub(a.start))
	return !done
}

// animatedVector animates both coordinates of a Vector with one curve.
type animatedVector struct {
	x, y AnimatedValue
}

func (a *animatedVector) set(v Vector) {
	a.x.Set(v.X)
	a.y.Set(v.Y)
}

func (a *animatedVector) animateTo(v Vector, curve Curve, now time.Time) {
	a.x.AnimateTo(v.X, curve, now)
	a.y.AnimateTo(v.Y, curve, now)
}

func (a *animatedVector) value(now time.Time) Vector {
	return Vector{X: a.x.Value(now), Y: a.y.Value(now)}
}

func (a *animatedVector) animating(now time.Time) bool {
	return a.x.Animating(now) || a.y.Animating(now)
}

// animatedColor animates the three RGB channels with one curve.
type animatedColor struct {
	r, g, b AnimatedValue
}

func (a *animatedColor) set(c RGB) {
	a.r.Set(c.R)
	a.g.Set(c.G)
	a.b.Set(c.B)
}

func (a *animatedColor) animateTo(c RGB, curve Curve, now time.Time) {
	a.r.AnimateTo(c.R, curve, now)
	a.g.AnimateTo(c.G, curve, now)
	a.b.AnimateTo(c.B, curve, now)
}

func (a *animatedColor) value(now time.Time) RGB {
	return RGB{R: a.r.Value(now), G: a.g.Value(now), B: a.b.Value(now)}
}

func (a *animatedColor) animating(now time.Time) bool {
	return a.r.Animating(now) || a.g.Animating(now) || a.b.Animating(now)
}
