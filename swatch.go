package colorwheel

import (
	"sync"

	"github.com/gogpu/gg"
)

// Swatch is a flat region filled with the live color of a ColorState.
//
// While the shared gesture flag is active the fill follows the state
// instantly; otherwise it eases toward each new color with the timing
// curve, so programmatic changes and post-gesture settling do not pop.
type Swatch struct {
	mu    sync.Mutex
	cfg   config
	state ColorState
	flag  *GestureFlag
	fill  animatedColor

	closeOnce   sync.Once
	unsubscribe func()
}

// NewSwatch creates a Swatch bound to state. Pass WithGestureFlag with the
// wheel's flag so the swatch can tell drags from programmatic changes.
// Wheel-only options are ignored.
func NewSwatch(state ColorState, opts ...Option) *Swatch {
	cfg := newConfig(opts)
	s := &Swatch{
		cfg:   cfg,
		state: state,
		flag:  cfg.flag,
	}
	if s.flag == nil {
		s.flag = NewGestureFlag()
	}
	s.fill.set(state.HSV().RGB())
	s.unsubscribe = state.Subscribe(s.onStateChange)
	return s
}

func (s *Swatch) onStateChange(c HSV) {
	now := s.cfg.clock()
	target := c.RGB()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flag.Active() {
		s.fill.set(target)
		return
	}
	s.fill.animateTo(target, s.cfg.timing, now)
}

// Color returns the fill color at the current time.
func (s *Swatch) Color() RGB {
	now := s.cfg.clock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fill.value(now)
}

// Hex returns the fill color at the current time as "#rrggbb".
func (s *Swatch) Hex() string {
	return s.Color().Hex()
}

// Animating reports whether the fill is still easing.
func (s *Swatch) Animating() bool {
	now := s.cfg.clock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fill.animating(now)
}

// Draw fills the rectangle (x, y, w, h) on dc with the current color,
// rounding corners by the style's CornerRadius.
func (s *Swatch) Draw(dc *gg.Context, x, y, w, h float64) error {
	dc.SetColor(s.Color())
	if r := s.cfg.style.CornerRadius; r > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, r)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	return dc.Fill()
}

// Close detaches the swatch from its state. Close is idempotent.
func (s *Swatch) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}
