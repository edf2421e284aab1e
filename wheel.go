package colorwheel

import (
	"math"
	"sync"
	"time"

	"github.com/gogpu/gg"
)

// Phase is the gesture state of a Wheel.
type Phase int

const (
	// Idle means no gesture is in progress. External color changes
	// animate the thumb toward the new position.
	Idle Phase = iota

	// Dragging means a gesture session is in progress. The thumb tracks
	// the pointer 1:1.
	Dragging
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Thumb is a snapshot of the draggable indicator.
type Thumb struct {
	// Position is the thumb center in canvas coordinates.
	Position Vector

	// Size is the thumb diameter.
	Size float64

	// Color is the thumb fill: the selected hue and saturation at full value.
	Color RGB
}

// Wheel is a headless color wheel controller. It turns pointer samples into
// hue and saturation, keeps the thumb in step with the shared color state,
// and reports colors to the host through its Dispatcher.
//
// The host feeds gesture samples in canvas coordinates through
// GestureStart, GestureMove and GestureEnd, in delivery order, and reads
// Thumb (or calls Draw) when rendering a frame.
//
// Wheel methods may be called from multiple goroutines, but gesture samples
// of one session must come from a single goroutine so they stay ordered.
type Wheel struct {
	mu  sync.Mutex
	cfg config

	state ColorState
	flag  *GestureFlag

	size   float64
	radius float64
	center Vector

	dragging   bool
	disabled   bool
	thumb      animatedVector
	thumbColor animatedColor

	// Last (h, s) observed from the state, to ignore value-only changes.
	lastH, lastS float64
	seen         bool

	background *gg.ImageBuf

	closeOnce   sync.Once
	unsubscribe func()
}

// New creates a Wheel.
//
// Without WithColorState the wheel owns its state and initializes it to
// DefaultColor unless WithInitialColor says otherwise. With a host-owned
// state, the state is only overwritten when WithInitialColor is given.
// A malformed initial color is logged and replaced by DefaultColor.
func New(opts ...Option) *Wheel {
	cfg := newConfig(opts)

	w := &Wheel{
		cfg:      cfg,
		state:    cfg.state,
		flag:     cfg.flag,
		disabled: cfg.disabled,
	}

	owned := w.state == nil
	if owned {
		w.state = NewSharedColor(HSV{H: 0, S: 0, V: svMax})
	}
	if w.flag == nil {
		w.flag = NewGestureFlag()
	}

	w.setGeometry(cfg.wheelSize())
	w.thumb.set(w.center)
	current := w.state.HSV()
	w.thumbColor.set(HSVToRGB(current.H, current.S, svMax))

	w.unsubscribe = w.state.Subscribe(w.onStateChange)
	w.onStateChange(current)

	initial, apply := cfg.initialColor, cfg.hasInitial
	if !apply && owned {
		initial, apply = DefaultColor, true
	}
	if apply {
		c, err := HexToHSV(initial)
		if err != nil {
			Logger().Warn("colorwheel: invalid initial color, using default",
				"color", initial, "fallback", DefaultColor, "err", err)
			c = MustHexToHSV(DefaultColor)
		}
		w.state.SetHSV(c)
	}

	return w
}

func (w *Wheel) setGeometry(size float64) {
	w.size = size
	w.radius = size / 2
	w.center = Vector{X: w.radius, Y: w.radius}
}

// Close detaches the wheel from its color state. Close is idempotent.
func (w *Wheel) Close() {
	w.closeOnce.Do(func() {
		if w.unsubscribe != nil {
			w.unsubscribe()
		}
	})
}

// Size returns the wheel diameter.
func (w *Wheel) Size() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Radius returns the wheel radius.
func (w *Wheel) Radius() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.radius
}

// Center returns the wheel center in canvas coordinates.
func (w *Wheel) Center() Vector {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.center
}

// Resize changes the wheel diameter, recomputes the center and moves the
// thumb to the current color's position on the resized wheel.
// Non-positive sizes are ignored.
func (w *Wheel) Resize(size float64) {
	if size <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if size == w.size {
		return
	}
	w.setGeometry(size)
	w.background = nil
	if !w.flag.Active() {
		w.syncThumbLocked(w.state.HSV(), w.cfg.clock())
	}
}

// Phase returns the current gesture phase.
func (w *Wheel) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dragging {
		return Dragging
	}
	return Idle
}

// Disabled reports whether gesture handling is suppressed.
func (w *Wheel) Disabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disabled
}

// SetDisabled enables or suppresses gesture handling. A session already in
// progress still accepts its remaining samples.
func (w *Wheel) SetDisabled(disabled bool) {
	w.mu.Lock()
	w.disabled = disabled
	w.mu.Unlock()
}

// ColorState returns the color state the wheel reads and writes.
func (w *Wheel) ColorState() ColorState {
	return w.state
}

// GestureFlag returns the flag that is active during gesture sessions.
func (w *Wheel) GestureFlag() *GestureFlag {
	return w.flag
}

// HSV returns the current color.
func (w *Wheel) HSV() HSV {
	return w.state.HSV()
}

// Hex returns the current color as "#rrggbb".
func (w *Wheel) Hex() string {
	return w.state.HSV().Hex()
}

// Thumb returns the thumb as it should be drawn now.
func (w *Wheel) Thumb() Thumb {
	now := w.cfg.clock()
	w.mu.Lock()
	defer w.mu.Unlock()
	return Thumb{
		Position: w.thumb.value(now),
		Size:     w.cfg.thumbSize,
		Color:    w.thumbColor.value(now),
	}
}

// Animating reports whether the thumb is still moving or changing color,
// so the host knows to keep scheduling frames.
func (w *Wheel) Animating() bool {
	now := w.cfg.clock()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.thumb.animating(now) || w.thumbColor.animating(now)
}

// GestureStart begins a gesture session at canvas position p.
// It returns false when the wheel is disabled or a session is already
// in progress.
func (w *Wheel) GestureStart(p Vector) bool {
	w.mu.Lock()
	switch {
	case w.disabled:
		w.mu.Unlock()
		Logger().Debug("colorwheel: gesture ignored, wheel disabled")
		return false
	case w.dragging:
		w.mu.Unlock()
		Logger().Debug("colorwheel: gesture start ignored, session in progress")
		return false
	}
	w.dragging = true
	w.flag.Set(true)
	w.mu.Unlock()

	Logger().Debug("colorwheel: gesture start", "x", p.X, "y", p.Y)
	w.emitChange(w.processPan(p))
	return true
}

// GestureMove processes one in-session pointer sample.
// It returns false when no session is in progress.
func (w *Wheel) GestureMove(p Vector) bool {
	if !w.inSession("move") {
		return false
	}
	w.emitChange(w.processPan(p))
	return true
}

// GestureEnd processes the final pointer sample and closes the session.
//
// If the thumb comes to rest closer than SnapRadius to the center, the
// color is deselected: the thumb springs back to the center, hue and
// saturation become 0, and both callbacks fire with the desaturated color.
// Otherwise only the confirm callback fires.
//
// The session is closed before any callback runs, so a host that writes the
// color from a callback is treated as an idle external change.
func (w *Wheel) GestureEnd(p Vector) bool {
	if !w.inSession("end") {
		return false
	}
	moved := w.processPan(p)

	now := w.cfg.clock()
	w.mu.Lock()
	rest := CanvasToPolar(w.thumb.value(now), w.center)
	snap := math.Min(rest.Radius, w.radius) < SnapRadius
	if snap {
		w.thumb.animateTo(PolarToCanvas(PolarPoint{}, w.center), w.cfg.spring, now)
		w.thumbColor.set(HSVToRGB(0, 0, svMax))
	}
	w.mu.Unlock()

	var hex string
	if snap {
		c := HSV{H: 0, S: 0, V: w.state.HSV().V}
		w.state.SetHSV(c)
		hex = c.Hex()
		Logger().Debug("colorwheel: gesture end, snapped to center", "radius", rest.Radius, "color", hex)
	} else {
		hex = w.state.HSV().Hex()
		Logger().Debug("colorwheel: gesture end", "color", hex)
	}

	w.mu.Lock()
	w.dragging = false
	w.flag.Set(false)
	w.mu.Unlock()

	w.emitChange(moved)
	if snap {
		w.emitChange(hex)
	}
	w.emitConfirm(hex)
	return true
}

func (w *Wheel) inSession(sample string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dragging {
		Logger().Debug("colorwheel: gesture sample outside session", "sample", sample)
		return false
	}
	return true
}

// processPan turns one pointer sample into a thumb position and a new
// hue/saturation. It returns the hex to report.
func (w *Wheel) processPan(p Vector) string {
	w.mu.Lock()
	polar := CanvasToPolar(p, w.center)
	radius := math.Min(polar.Radius, w.radius)
	w.thumb.set(PolarToCanvas(PolarPoint{Theta: polar.Theta, Radius: radius}, w.center))

	h := NormalizeHue(ToDegree(polar.Theta))
	s := radius / w.radius * svMax
	w.thumbColor.set(HSVToRGB(h, s, svMax))
	w.mu.Unlock()

	c := HSV{H: h, S: s, V: w.state.HSV().V}
	w.state.SetHSV(c)
	return c.Hex()
}

// onStateChange is the state subscription. While idle it eases the thumb
// toward the position of the new (h, s); during a gesture the controller
// itself is the writer and the thumb is already where it belongs.
func (w *Wheel) onStateChange(c HSV) {
	now := w.cfg.clock()
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := !w.seen || c.H != w.lastH || c.S != w.lastS
	w.lastH, w.lastS, w.seen = c.H, c.S, true
	if !changed || w.flag.Active() {
		return
	}
	w.syncThumbLocked(c, now)
}

func (w *Wheel) syncThumbLocked(c HSV, now time.Time) {
	target := PolarToCanvas(PolarPoint{
		Theta:  ToRadian(c.H),
		Radius: c.S / svMax * w.radius,
	}, w.center)
	w.thumb.animateTo(target, w.cfg.timing, now)
	w.thumbColor.animateTo(HSVToRGB(c.H, c.S, svMax), w.cfg.spring, now)
}

func (w *Wheel) emitChange(hex string) {
	if fn := w.cfg.onChange; fn != nil {
		w.cfg.dispatcher.Dispatch(func() { fn(hex) })
	}
}

func (w *Wheel) emitConfirm(hex string) {
	if fn := w.cfg.onConfirm; fn != nil {
		w.cfg.dispatcher.Dispatch(func() { fn(hex) })
	}
}
