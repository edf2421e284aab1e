package colorwheel

import (
	"sync"
	"sync/atomic"
)

// ColorState is an observable HSV color shared between the wheel, the
// swatch and the host application.
//
// Implementations must notify every subscriber of each SetHSV, in
// subscription order, without holding internal locks, so subscribers may
// read the state from inside the callback. Notifications must arrive in the
// order the values were stored.
type ColorState interface {
	// HSV returns the current color.
	HSV() HSV

	// SetHSV replaces the current color and notifies subscribers.
	SetHSV(HSV)

	// Subscribe registers fn to be called after every change.
	// The returned function removes the subscription.
	Subscribe(fn func(HSV)) (cancel func())
}

// SharedColor is the default ColorState: a single composite cell holding
// all three components. It is safe for concurrent use.
//
// Notifications are delivered one value at a time. A write made while
// another is being delivered, from a subscriber or another goroutine, is
// queued and delivered by the writer already delivering, after the current
// value has reached every subscriber.
type SharedColor struct {
	mu     sync.Mutex
	value  HSV
	nextID uint64
	subs   []subscriber

	pending    []HSV
	delivering bool
}

type subscriber struct {
	id uint64
	fn func(HSV)
}

// Verify at compile time that SharedColor implements ColorState.
var _ ColorState = (*SharedColor)(nil)

// NewSharedColor creates a SharedColor holding c (normalized).
func NewSharedColor(c HSV) *SharedColor {
	return &SharedColor{value: c.Normalize()}
}

// HSV returns the current color.
func (s *SharedColor) HSV() HSV {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// SetHSV stores c with its hue wrapped into [0, 360) and S, V clamped to
// [0, 100], then notifies subscribers.
func (s *SharedColor) SetHSV(c HSV) {
	c = c.Normalize()

	s.mu.Lock()
	s.value = c
	s.pending = append(s.pending, c)
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	defer s.finishDelivery()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		subs := make([]subscriber, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(next)
		}
		s.mu.Lock()
	}
}

// finishDelivery runs with s.mu held, unless a subscriber panicked.
func (s *SharedColor) finishDelivery() {
	if r := recover(); r != nil {
		s.mu.Lock()
		s.pending = nil
		s.delivering = false
		s.mu.Unlock()
		panic(r)
	}
	s.pending = nil
	s.delivering = false
	s.mu.Unlock()
}

// SetHex decodes hex and stores the result. The state is left untouched
// when hex is malformed.
func (s *SharedColor) SetHex(hex string) error {
	c, err := HexToHSV(hex)
	if err != nil {
		return err
	}
	s.SetHSV(c)
	return nil
}

// Subscribe registers fn to be called after every SetHSV.
func (s *SharedColor) Subscribe(fn func(HSV)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// GestureFlag reports whether a gesture session is in progress.
// It is true strictly between gesture start and gesture end, and may be
// shared between a Wheel and any number of Swatch values.
type GestureFlag struct {
	active atomic.Bool
}

// NewGestureFlag returns an inactive flag.
func NewGestureFlag() *GestureFlag {
	return &GestureFlag{}
}

// Active reports whether a gesture is in progress.
func (f *GestureFlag) Active() bool {
	return f.active.Load()
}

// Set updates the flag.
func (f *GestureFlag) Set(active bool) {
	f.active.Store(active)
}
