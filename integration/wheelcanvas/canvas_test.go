// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wheelcanvas

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/colorwheel"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct{}

func (mockProvider) Device() gpucontext.Device             { return struct{}{} }
func (mockProvider) Queue() gpucontext.Queue               { return struct{}{} }
func (mockProvider) Adapter() gpucontext.Adapter           { return struct{}{} }
func (mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// mockTexture implements gpucontext.Texture and gpucontext.TextureUpdater.
type mockTexture struct {
	width, height int
	data          []byte
	updated       int
	destroyed     bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }
func (m *mockTexture) Destroy()    { m.destroyed = true }

func (m *mockTexture) UpdateData(data []byte) error {
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

// mockDrawer implements gpucontext.TextureDrawer and gpucontext.TextureCreator.
type mockDrawer struct {
	textures       []*mockTexture
	drawCount      int
	drawnX, drawnY float32
}

func (m *mockDrawer) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

func (m *mockDrawer) DrawTexture(_ gpucontext.Texture, x, y float32) error {
	m.drawCount++
	m.drawnX, m.drawnY = x, y
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator { return m }

// mockWindow counts redraw requests.
type mockWindow struct {
	gpucontext.NullWindowProvider
	redraws int
}

func (m *mockWindow) RequestRedraw() { m.redraws++ }

// mockPlatform reports a reduced-motion preference.
type mockPlatform struct {
	gpucontext.NullPlatformProvider
	reduce bool
}

func (m mockPlatform) ReduceMotion() bool { return m.reduce }

// mockSource records the registered pointer handler.
type mockSource struct {
	handler func(gpucontext.PointerEvent)
}

func (m *mockSource) OnPointer(fn func(gpucontext.PointerEvent)) { m.handler = fn }

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type harness struct {
	clock    *fakeClock
	canvas   *Canvas
	window   *mockWindow
	changes  []string
	confirms []string
}

func newHarness(t *testing.T, wheelOpts ...colorwheel.Option) *harness {
	t.Helper()
	h := &harness{
		clock:  &fakeClock{now: time.Unix(1_700_000_000, 0)},
		window: &mockWindow{},
	}
	opts := append([]colorwheel.Option{
		colorwheel.WithSize(300),
		colorwheel.WithClock(h.clock.Now),
		colorwheel.WithOnColorChange(func(hex string) { h.changes = append(h.changes, hex) }),
		colorwheel.WithOnColorConfirm(func(hex string) { h.confirms = append(h.confirms, hex) }),
	}, wheelOpts...)
	w := colorwheel.New(opts...)

	c, err := New(mockProvider{}, w, WithOrigin(20, 20), WithWindow(h.window))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	h.canvas = c

	// Let the mount transition settle.
	h.clock.Advance(2 * time.Second)
	return h
}

func mouse(typ gpucontext.PointerEventType, x, y float64) gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   1,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Button:      gpucontext.ButtonLeft,
	}
}

func TestNew(t *testing.T) {
	w := colorwheel.New(colorwheel.WithSize(120.5))
	defer w.Close()

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		wheel    *colorwheel.Wheel
		wantErr  error
	}{
		{"valid", mockProvider{}, w, nil},
		{"nil wheel", mockProvider{}, nil, ErrNilWheel},
		{"nil provider", nil, w, ggcanvas.ErrNilProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.provider, tt.wheel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}
			defer func() { _ = c.canvas.Close() }()

			if c.canvas.Width() != 121 || c.canvas.Height() != 121 {
				t.Errorf("canvas = %dx%d, want 121x121", c.canvas.Width(), c.canvas.Height())
			}
			if !c.NeedsRedraw() {
				t.Error("new canvas should need a redraw")
			}
			if c.Wheel() != w {
				t.Error("Wheel() returned a different wheel")
			}
		})
	}
}

func TestPointerSession(t *testing.T) {
	h := newHarness(t)
	c := h.canvas

	if !c.HandlePointer(mouse(gpucontext.PointerDown, 320, 170)) {
		t.Fatal("PointerDown not consumed")
	}
	if got := c.Wheel().Hex(); got != "#ff0000" {
		t.Errorf("color after down = %q, want #ff0000", got)
	}
	if !c.HandlePointer(mouse(gpucontext.PointerMove, 170, 20)) {
		t.Error("PointerMove not consumed")
	}
	if got := c.Wheel().HSV().H; got < 89.999 || got > 90.001 {
		t.Errorf("hue after move = %v, want 90", got)
	}
	if !c.HandlePointer(mouse(gpucontext.PointerUp, 320, 170)) {
		t.Error("PointerUp not consumed")
	}

	if len(h.changes) != 3 {
		t.Errorf("changes = %v, want 3", h.changes)
	}
	if len(h.confirms) != 1 || h.confirms[0] != "#ff0000" {
		t.Errorf("confirms = %v, want [#ff0000]", h.confirms)
	}
	if c.Wheel().Phase() != colorwheel.Idle {
		t.Error("wheel still dragging after PointerUp")
	}
	if h.window.redraws != 3 {
		t.Errorf("redraw requests = %d, want 3", h.window.redraws)
	}
}

func TestPointerFiltering(t *testing.T) {
	tests := []struct {
		name string
		ev   gpucontext.PointerEvent
	}{
		{"right button", func() gpucontext.PointerEvent {
			ev := mouse(gpucontext.PointerDown, 320, 170)
			ev.Button = gpucontext.ButtonRight
			return ev
		}()},
		{"non-primary touch", gpucontext.PointerEvent{
			Type: gpucontext.PointerDown, PointerID: 7, X: 320, Y: 170,
			PointerType: gpucontext.PointerTypeTouch,
		}},
		{"move without session", mouse(gpucontext.PointerMove, 320, 170)},
		{"up without session", mouse(gpucontext.PointerUp, 320, 170)},
		{"enter", mouse(gpucontext.PointerEnter, 320, 170)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if h.canvas.HandlePointer(tt.ev) {
				t.Error("event should be ignored")
			}
			if len(h.changes) != 0 {
				t.Errorf("changes = %v, want none", h.changes)
			}
		})
	}
}

func TestSecondPointerIgnored(t *testing.T) {
	h := newHarness(t)
	c := h.canvas

	c.HandlePointer(mouse(gpucontext.PointerDown, 320, 170))

	other := gpucontext.PointerEvent{
		Type: gpucontext.PointerMove, PointerID: 2, X: 20, Y: 170,
		PointerType: gpucontext.PointerTypeTouch, IsPrimary: true,
	}
	if c.HandlePointer(other) {
		t.Error("move from another pointer should be ignored")
	}
	other.Type = gpucontext.PointerDown
	if c.HandlePointer(other) {
		t.Error("second down during a session should be ignored")
	}
	if got := c.Wheel().Hex(); got != "#ff0000" {
		t.Errorf("color = %q, want #ff0000", got)
	}
}

func TestIgnoredPointerLogged(t *testing.T) {
	orig := colorwheel.Logger()
	t.Cleanup(func() { colorwheel.SetLogger(orig) })
	var buf bytes.Buffer
	colorwheel.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h := newHarness(t)
	if h.canvas.HandlePointer(mouse(gpucontext.PointerMove, 320, 170)) {
		t.Fatal("move without a session should be ignored")
	}

	out := buf.String()
	if !strings.Contains(out, "wheelcanvas: pointer event ignored") {
		t.Errorf("log output missing ignored event: %s", out)
	}
	if !strings.Contains(out, "not session pointer") {
		t.Errorf("log output missing reason: %s", out)
	}
}

func TestPointerCancelEndsAtLastPosition(t *testing.T) {
	h := newHarness(t)
	c := h.canvas

	c.HandlePointer(mouse(gpucontext.PointerDown, 320, 170))
	if !c.HandlePointer(mouse(gpucontext.PointerCancel, 0, 0)) {
		t.Fatal("PointerCancel not consumed")
	}
	if len(h.confirms) != 1 || h.confirms[0] != "#ff0000" {
		t.Errorf("confirms = %v, want [#ff0000]", h.confirms)
	}
	if c.Wheel().Phase() != colorwheel.Idle {
		t.Error("wheel still dragging after cancel")
	}
}

func TestAttach(t *testing.T) {
	h := newHarness(t)
	src := &mockSource{}
	h.canvas.Attach(src)
	if src.handler == nil {
		t.Fatal("Attach did not register a handler")
	}

	src.handler(mouse(gpucontext.PointerDown, 320, 170))
	src.handler(mouse(gpucontext.PointerUp, 320, 170))
	if len(h.confirms) != 1 {
		t.Errorf("confirms = %v, want one", h.confirms)
	}
}

func TestRenderTo(t *testing.T) {
	h := newHarness(t, colorwheel.WithInitialColor("#ff0000"))
	h.clock.Advance(2 * time.Second)
	c := h.canvas
	dc := &mockDrawer{}

	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if len(dc.textures) != 1 || dc.drawCount != 1 {
		t.Fatalf("textures = %d, draws = %d, want 1 and 1", len(dc.textures), dc.drawCount)
	}
	if dc.drawnX != 20 || dc.drawnY != 20 {
		t.Errorf("drawn at (%v, %v), want (20, 20)", dc.drawnX, dc.drawnY)
	}
	if c.NeedsRedraw() {
		t.Error("settled wheel should not need a redraw after rendering")
	}
	if h.window.redraws != 0 {
		t.Errorf("redraw requests = %d, want 0 for a settled wheel", h.window.redraws)
	}

	tex := dc.textures[0]
	if tex.width != 300 || tex.height != 300 {
		t.Fatalf("texture = %dx%d, want 300x300", tex.width, tex.height)
	}
	// The thumb sits on the rim at three o'clock and is red.
	i := (150*300 + 295) * 4
	if r, g, a := tex.data[i], tex.data[i+1], tex.data[i+3]; r < 240 || g > 20 || a < 240 {
		t.Errorf("pixel (295, 150) = (r=%d, g=%d, a=%d), want opaque red", r, g, a)
	}
}

func TestRenderToRequestsFramesWhileAnimating(t *testing.T) {
	h := newHarness(t)
	c := h.canvas
	dc := &mockDrawer{}

	c.Wheel().ColorState().SetHSV(colorwheel.HSV{H: 120, S: 100, V: 100})
	if !c.NeedsRedraw() {
		t.Fatal("animating wheel should need a redraw")
	}
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if h.window.redraws != 1 {
		t.Errorf("redraw requests = %d, want 1", h.window.redraws)
	}

	h.clock.Advance(2 * time.Second)
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if h.window.redraws != 1 {
		t.Errorf("redraw requests = %d, want no more after settling", h.window.redraws)
	}
	if len(dc.textures) != 1 || dc.textures[0].updated != 1 {
		t.Errorf("texture should be created once and updated once")
	}
}

func TestResize(t *testing.T) {
	h := newHarness(t)
	c := h.canvas

	if err := c.Resize(200); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, hh := c.canvas.Size(); w != 200 || hh != 200 {
		t.Errorf("canvas = %dx%d, want 200x200", w, hh)
	}
	if c.Wheel().Size() != 200 {
		t.Errorf("wheel size = %v, want 200", c.Wheel().Size())
	}
	if !c.NeedsRedraw() {
		t.Error("resized canvas should need a redraw")
	}
	if err := c.Resize(0); !errors.Is(err, ggcanvas.ErrInvalidDimensions) {
		t.Errorf("Resize(0) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestMotionOptions(t *testing.T) {
	if opts := MotionOptions(nil); opts != nil {
		t.Errorf("MotionOptions(nil) = %v, want nil", opts)
	}
	if opts := MotionOptions(mockPlatform{}); opts != nil {
		t.Errorf("MotionOptions without reduced motion = %v, want nil", opts)
	}

	clock := &fakeClock{now: time.Unix(0, 0)}
	opts := append(MotionOptions(mockPlatform{reduce: true}),
		colorwheel.WithSize(300), colorwheel.WithClock(clock.Now))
	w := colorwheel.New(opts...)
	defer w.Close()

	w.ColorState().SetHSV(colorwheel.HSV{H: 0, S: 100, V: 100})
	if got := w.Thumb().Position; got != colorwheel.Vec(300, 150) {
		t.Errorf("thumb = %v, want (300, 150) without easing", got)
	}
	if w.Animating() {
		t.Error("reduced-motion wheel should not animate")
	}
}

func TestClose(t *testing.T) {
	w := colorwheel.New(colorwheel.WithSize(100))
	c, err := New(mockProvider{}, w)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.Redraw(); !errors.Is(err, ggcanvas.ErrCanvasClosed) {
		t.Errorf("Redraw() after Close error = %v, want ErrCanvasClosed", err)
	}
}
