// Package colorwheel provides a circular HSV color picker for Go.
//
// # Overview
//
// A Wheel maps angle to hue and distance from the center to saturation.
// The user drags a thumb over the wheel; every accepted sample updates a
// shared color state and is reported as a lowercase "#rrggbb" string.
// Value (brightness) is never changed by dragging and is usually driven by
// a separate slider writing to the same state.
//
// The package has no event loop of its own. Hosts feed pointer samples
// through GestureStart, GestureMove and GestureEnd, and draw the wheel
// into a gg.Context with Draw. The wheelcanvas integration does both for
// gpucontext windows.
//
// # Quick Start
//
//	import "github.com/gogpu/colorwheel"
//
//	w := colorwheel.New(
//		colorwheel.WithSize(300),
//		colorwheel.WithInitialColor("#ff8800"),
//		colorwheel.WithOnColorConfirm(func(hex string) {
//			fmt.Println("picked", hex)
//		}),
//	)
//	defer w.Close()
//
//	w.GestureStart(colorwheel.Vec(150, 150))
//	w.GestureMove(colorwheel.Vec(260, 150))
//	w.GestureEnd(colorwheel.Vec(290, 150))
//
//	dc := gg.NewContext(300, 300)
//	if err := w.Draw(dc); err != nil {
//		log.Fatal(err)
//	}
//	dc.SavePNG("wheel.png")
//
// # Shared State
//
// Several components can observe one color. Pass the same ColorState and
// GestureFlag to a Wheel and a Swatch so the swatch follows the drag
// instantly and eases toward colors written while no gesture is active:
//
//	state := colorwheel.NewSharedColor(colorwheel.MustHexToHSV("#00ff00"))
//	flag := colorwheel.NewGestureFlag()
//	w := colorwheel.New(colorwheel.WithColorState(state), colorwheel.WithGestureFlag(flag))
//	s := colorwheel.NewSwatch(state, colorwheel.WithGestureFlag(flag))
//
// # Snapping
//
// Releasing the thumb within 10 pixels of the center snaps it to the
// center and sets saturation to zero, keeping hue and value.
//
// # Callbacks
//
// Color callbacks run through a Dispatcher. Immediate calls them inline,
// Queue defers them until Drain, and Loop runs them on a goroutine of the
// host's choosing. Callbacks always observe colors in the order the
// samples were accepted.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Use
// SetLogger to enable diagnostics.
package colorwheel
