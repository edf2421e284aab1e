package colorwheel

import (
	"image"
	"time"
)

// Default construction parameters.
const (
	// DefaultAvailableWidth is the layout width assumed when neither
	// WithSize nor WithAvailableWidth is given.
	DefaultAvailableWidth = 360

	// DefaultMargin is subtracted from the available width to size the wheel.
	DefaultMargin = 32

	// DefaultThumbSize is the thumb diameter.
	DefaultThumbSize = 32

	// DefaultColor is the initial color of an internally owned state.
	DefaultColor = "#ffffff"

	// SnapRadius is the distance from the center under which a released
	// thumb snaps back to the center and deselects the color.
	SnapRadius = 10
)

// Option configures a Wheel or a Swatch during creation.
//
// Example:
//
//	w := colorwheel.New(
//	    colorwheel.WithSize(300),
//	    colorwheel.WithInitialColor("#ff0000"),
//	    colorwheel.WithOnColorConfirm(func(hex string) { fmt.Println(hex) }),
//	)
type Option func(*config)

// Style holds visual overrides for the wheel container, thumb and swatch.
type Style struct {
	// Background fills the wheel's square container; nil leaves it transparent.
	Background *RGB

	// ThumbBorderWidth is the width of the ring drawn around the thumb.
	ThumbBorderWidth float64

	// ThumbBorderColor is the color of the thumb ring.
	ThumbBorderColor RGB

	// CornerRadius rounds the swatch rectangle.
	CornerRadius float64
}

// DefaultStyle returns the style used when WithStyle is not given:
// a transparent container and a 2 unit white thumb border.
func DefaultStyle() Style {
	return Style{
		ThumbBorderWidth: 2,
		ThumbBorderColor: RGB{R: 255, G: 255, B: 255},
	}
}

// config holds optional configuration for Wheel and Swatch creation.
type config struct {
	size           float64
	availableWidth float64
	thumbSize      float64
	state          ColorState
	flag           *GestureFlag
	initialColor   string
	hasInitial     bool
	disabled       bool
	style          Style
	onChange       func(hex string)
	onConfirm      func(hex string)
	dispatcher     Dispatcher
	clock          func() time.Time
	timing         Curve
	spring         Curve
	wheelImage     image.Image
}

// defaultConfig returns the default options.
func defaultConfig() config {
	return config{
		availableWidth: DefaultAvailableWidth,
		thumbSize:      DefaultThumbSize,
		style:          DefaultStyle(),
		dispatcher:     Immediate{},
		clock:          time.Now,
		timing:         DefaultTiming,
		spring:         DefaultSpring,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// wheelSize returns the explicit size, or the available width minus the
// default margin.
func (c *config) wheelSize() float64 {
	if c.size > 0 {
		return c.size
	}
	if s := c.availableWidth - DefaultMargin; s > 0 {
		return s
	}
	return 1
}

// WithSize sets the wheel diameter in canvas units.
func WithSize(d float64) Option {
	return func(c *config) {
		c.size = d
	}
}

// WithAvailableWidth sets the layout width the default size is derived
// from. It has no effect when WithSize is also given.
func WithAvailableWidth(w float64) Option {
	return func(c *config) {
		c.availableWidth = w
	}
}

// WithThumbSize sets the thumb diameter.
func WithThumbSize(d float64) Option {
	return func(c *config) {
		c.thumbSize = d
	}
}

// WithColorState shares a host-owned color state instead of creating one.
func WithColorState(s ColorState) Option {
	return func(c *config) {
		c.state = s
	}
}

// WithGestureFlag shares a host-owned gesture flag, typically the same one
// passed to a Swatch.
func WithGestureFlag(f *GestureFlag) Option {
	return func(c *config) {
		c.flag = f
	}
}

// WithInitialColor sets the color written to the state at creation.
// Malformed values fall back to DefaultColor.
func WithInitialColor(hex string) Option {
	return func(c *config) {
		c.initialColor = hex
		c.hasInitial = true
	}
}

// WithDisabled suppresses gesture handling entirely.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithStyle overrides the container, thumb and swatch style.
func WithStyle(s Style) Option {
	return func(c *config) {
		c.style = s
	}
}

// WithOnColorChange sets the callback fired on every committed color
// update during interaction and on the deselect-to-center event.
func WithOnColorChange(fn func(hex string)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}

// WithOnColorConfirm sets the callback fired once at the end of each
// gesture session.
func WithOnColorConfirm(fn func(hex string)) Option {
	return func(c *config) {
		c.onConfirm = fn
	}
}

// WithDispatcher sets how host callbacks reach the host's execution
// context. The default is Immediate.
func WithDispatcher(d Dispatcher) Option {
	return func(c *config) {
		if d != nil {
			c.dispatcher = d
		}
	}
}

// WithClock sets the time source used to evaluate animations.
// Hosts usually pass their frame clock; tests pass a fake.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithTimingCurve replaces the easing used for idle-state synchronization.
func WithTimingCurve(curve Curve) Option {
	return func(c *config) {
		c.timing = curve
	}
}

// WithSpringCurve replaces the spring used for the snap-to-center motion
// and idle thumb color changes.
func WithSpringCurve(curve Curve) Option {
	return func(c *config) {
		c.spring = curve
	}
}

// WithWheelImage replaces the generated wheel background, for example with
// an asset loaded by LoadWheelImage.
func WithWheelImage(img image.Image) Option {
	return func(c *config) {
		c.wheelImage = img
	}
}
