// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wheelcanvas hosts a colorwheel.Wheel inside a gogpu window.
//
// It owns a ggcanvas.Canvas sized to the wheel, translates gpucontext
// pointer events into gesture samples, and redraws the wheel only when
// it changed or is still animating.
//
// Basic usage:
//
//	wheel := colorwheel.New(colorwheel.WithSize(300))
//	wc, err := wheelcanvas.New(app.GPUContextProvider(), wheel,
//	    wheelcanvas.WithOrigin(20, 20),
//	    wheelcanvas.WithWindow(app),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer wc.Close()
//	wc.Attach(app)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = wc.RenderTo(dc.AsTextureDrawer())
//	})
package wheelcanvas
