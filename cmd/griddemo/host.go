package main

import (
	"errors"

	"github.com/gogpu/squaregrid"
	"github.com/gogpu/squaregrid/surface"
)

// headless is a Container without a window. It holds one surface at the
// origin and delivers synthetic clicks.
type headless struct {
	ratio   float64
	surface surface.Surface
	onClick func(squaregrid.ClickEvent)
}

func (h *headless) DevicePixelRatio() float64 { return h.ratio }

func (h *headless) Attach(s surface.Surface, onClick func(squaregrid.ClickEvent)) error {
	if h.surface != nil {
		return errors.New("headless: surface already attached")
	}
	s.Place(0, 0)
	h.surface = s
	h.onClick = onClick
	return nil
}

func (h *headless) Detach(s surface.Surface) {
	if h.surface == s {
		h.surface = nil
		h.onClick = nil
	}
}

// click delivers a click if it lands on the attached surface.
func (h *headless) click(x, y float64) {
	if h.surface == nil || h.onClick == nil {
		return
	}
	if !h.surface.BoundingRect().Contains(x, y) {
		return
	}
	h.onClick(squaregrid.ClickEvent{ClientX: x, ClientY: y})
}
