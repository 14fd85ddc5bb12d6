package squaregrid

import "github.com/gogpu/squaregrid/surface"

// Container is the host UI element a grid attaches its surface to.
//
// The host owns layout and pointer delivery: it places the surface (see
// surface.Surface.Place) and calls onClick, on its UI goroutine, once per
// click that lands on the surface.
type Container interface {
	// DevicePixelRatio reports the ratio between physical pixels and
	// logical units on the display the container lives on.
	DevicePixelRatio() float64

	// Attach adds the surface to the container and starts delivering
	// clicks on it to onClick.
	Attach(s surface.Surface, onClick func(ClickEvent)) error

	// Detach removes the surface and stops click delivery.
	Detach(s surface.Surface)
}

// ClickEvent is a pointer click delivered by the host.
type ClickEvent struct {
	// ClientX and ClientY are the pointer position in the host's logical
	// coordinates, the same space as the surface's BoundingRect.
	ClientX, ClientY float64

	// Raw is the host's native event, passed through to callbacks.
	Raw any
}

// ClickFunc is called with the cell under a click and the event itself.
type ClickFunc func(row, column int, ev ClickEvent)
