// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wheelcanvas

import (
	"github.com/gogpu/colorwheel"
	"github.com/gogpu/gpucontext"
)

// Attach subscribes the canvas to src's pointer events.
func (c *Canvas) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		c.HandlePointer(ev)
	})
}

// HandlePointer feeds one pointer event to the wheel and reports whether
// the wheel consumed it.
//
// Only one pointer drives the wheel at a time: the primary pointer that
// went down first. Mouse sessions start with the left button only.
// A cancelled pointer ends the session at its last known position.
func (c *Canvas) HandlePointer(ev gpucontext.PointerEvent) bool {
	p := colorwheel.Vec(ev.X-c.origin.X, ev.Y-c.origin.Y)

	switch ev.Type {
	case gpucontext.PointerDown:
		switch {
		case c.active:
			return ignored(ev, "session in progress")
		case !ev.IsPrimary:
			return ignored(ev, "not primary")
		case ev.PointerType == gpucontext.PointerTypeMouse && ev.Button != gpucontext.ButtonLeft:
			return ignored(ev, "not left button")
		}
		if !c.wheel.GestureStart(p) {
			return ignored(ev, "rejected by wheel")
		}
		c.active = true
		c.pointerID = ev.PointerID

	case gpucontext.PointerMove:
		if !c.owns(ev) {
			return ignored(ev, "not session pointer")
		}
		if !c.wheel.GestureMove(p) {
			return ignored(ev, "rejected by wheel")
		}

	case gpucontext.PointerUp:
		if !c.owns(ev) {
			return ignored(ev, "not session pointer")
		}
		c.active = false
		c.wheel.GestureEnd(p)

	case gpucontext.PointerCancel:
		if !c.owns(ev) {
			return ignored(ev, "not session pointer")
		}
		c.active = false
		c.wheel.GestureEnd(c.last)

	default:
		return false
	}

	c.last = p
	c.dirty = true
	c.requestRedraw()
	return true
}

func (c *Canvas) owns(ev gpucontext.PointerEvent) bool {
	return c.active && ev.PointerID == c.pointerID
}

func ignored(ev gpucontext.PointerEvent, reason string) bool {
	colorwheel.Logger().Debug("wheelcanvas: pointer event ignored",
		"type", ev.Type, "pointer", ev.PointerID, "reason", reason)
	return false
}
