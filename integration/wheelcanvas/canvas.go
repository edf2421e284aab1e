// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wheelcanvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/colorwheel"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// ErrNilWheel is returned when New is called without a wheel.
var ErrNilWheel = errors.New("wheelcanvas: nil wheel")

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithOrigin places the wheel's top-left corner at (x, y) in window
// coordinates. Pointer events are translated by the same offset.
func WithOrigin(x, y float64) Option {
	return func(c *Canvas) {
		c.origin = colorwheel.Vec(x, y)
	}
}

// WithWindow lets the canvas request frames while the wheel animates.
func WithWindow(w gpucontext.WindowProvider) Option {
	return func(c *Canvas) {
		c.window = w
	}
}

// MotionOptions returns wheel options that honor the platform's reduced
// motion preference by making every transition instant.
// It returns nil when p is nil or motion is not reduced.
func MotionOptions(p gpucontext.PlatformProvider) []colorwheel.Option {
	if p == nil || !p.ReduceMotion() {
		return nil
	}
	instant := colorwheel.Timing{}
	return []colorwheel.Option{
		colorwheel.WithTimingCurve(instant),
		colorwheel.WithSpringCurve(instant),
	}
}

// Canvas draws a Wheel into a GPU texture and feeds it pointer input.
//
// Canvas is NOT safe for concurrent use. Pointer events and rendering are
// expected on the UI thread, as gpucontext delivers them.
type Canvas struct {
	wheel  *colorwheel.Wheel
	canvas *ggcanvas.Canvas
	origin colorwheel.Vector
	window gpucontext.WindowProvider
	dirty  bool

	// Active pointer session.
	pointerID int
	active    bool
	last      colorwheel.Vector
}

// New creates a Canvas for w. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, w *colorwheel.Wheel, opts ...Option) (*Canvas, error) {
	if w == nil {
		return nil, ErrNilWheel
	}
	size := pixelSize(w.Size())
	cv, err := ggcanvas.New(provider, size, size)
	if err != nil {
		return nil, fmt.Errorf("wheelcanvas: %w", err)
	}

	c := &Canvas{
		wheel:  w,
		canvas: cv,
		dirty:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func pixelSize(size float64) int {
	return max(1, int(math.Ceil(size)))
}

// Wheel returns the hosted wheel.
func (c *Canvas) Wheel() *colorwheel.Wheel {
	return c.wheel
}

// Origin returns the wheel's top-left corner in window coordinates.
func (c *Canvas) Origin() colorwheel.Vector {
	return c.origin
}

// NeedsRedraw reports whether the next RenderTo has to repaint the wheel.
func (c *Canvas) NeedsRedraw() bool {
	return c.dirty || c.wheel.Animating()
}

// Redraw paints the wheel into the canvas pixmap.
func (c *Canvas) Redraw() error {
	var drawErr error
	err := c.canvas.Draw(func(dc *gg.Context) {
		dc.Clear()
		drawErr = c.wheel.Draw(dc)
	})
	if err != nil {
		return err
	}
	if drawErr != nil {
		return fmt.Errorf("wheelcanvas: draw: %w", drawErr)
	}
	c.dirty = false
	return nil
}

// RenderTo repaints the wheel if needed and draws it at the origin.
// While the wheel is animating it asks the window for another frame.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	if c.NeedsRedraw() {
		if err := c.Redraw(); err != nil {
			return err
		}
	}
	if err := c.canvas.RenderToPosition(dc, float32(c.origin.X), float32(c.origin.Y)); err != nil {
		return err
	}
	if c.wheel.Animating() {
		// The frame just drawn is mid-transition; the settled one still has
		// to be painted.
		c.dirty = true
		c.requestRedraw()
	}
	return nil
}

// Resize changes the wheel diameter and the canvas to match.
func (c *Canvas) Resize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: size=%v", ggcanvas.ErrInvalidDimensions, size)
	}
	px := pixelSize(size)
	if err := c.canvas.Resize(px, px); err != nil {
		return err
	}
	c.wheel.Resize(size)
	c.dirty = true
	c.requestRedraw()
	return nil
}

// Close releases the GPU resources and detaches the wheel from its state.
// Close is idempotent.
func (c *Canvas) Close() error {
	c.wheel.Close()
	return c.canvas.Close()
}

func (c *Canvas) requestRedraw() {
	if c.window != nil {
		c.window.RequestRedraw()
	}
}
