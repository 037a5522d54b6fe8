// Package interaction turns pointer events into item moves.
//
// A [Session] tracks at most one drag at a time. Front ends call
// [Session.Press] when the pointer goes down on an item, [Session.Move] for
// every pointer motion, and [Session.Release] when the pointer goes up or
// leaves the canvas:
//
//	s := interaction.New(l)
//	s.Press("furniture-3", furniture.Point{X: 110, Y: 105})
//	s.Move(furniture.Point{X: 510, Y: 505}) // furniture-3 now at (500, 500)
//	s.Release()                             // layout rescored
//
// The offset between the pointer and the item's top-left corner is fixed at
// press time, so the item does not jump under the pointer. The layout is
// rescored once, on release, not on every motion event.
//
// All coordinates are canvas coordinates. A Session is driven synchronously
// by a single event loop and does no locking.
package interaction

import (
	"time"

	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
	"github.com/matzehuels/fengshui/pkg/observability"
)

// Session is the pointer interaction handler for one layout.
type Session struct {
	layout *layout.Layout

	activeID string
	offset   furniture.Point
	start    furniture.Point
	dragging bool
}

// New returns an idle session bound to l.
func New(l *layout.Layout) *Session {
	return &Session{layout: l}
}

// Layout returns the layout the session moves items on.
func (s *Session) Layout() *layout.Layout { return s.layout }

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool { return s.dragging }

// ActiveID returns the id of the item being dragged, or "" when idle.
func (s *Session) ActiveID() string { return s.activeID }

// Offset returns the pointer offset recorded at press time.
func (s *Session) Offset() furniture.Point { return s.offset }

// Press starts dragging item id, using the item's current position as its
// origin. See [Session.PressAt].
func (s *Session) Press(id string, pointer furniture.Point) bool {
	it, ok := s.layout.Item(id)
	if !ok {
		return false
	}
	return s.PressAt(id, pointer, it.Pos())
}

// PressAt starts dragging item id with offset = pointer - origin, where
// origin is the item's top-left corner in the pointer's coordinate space.
// It is ignored while another drag is active and for unknown ids. It
// reports whether a drag started.
func (s *Session) PressAt(id string, pointer, origin furniture.Point) bool {
	if s.dragging {
		return false
	}
	it, ok := s.layout.Item(id)
	if !ok {
		return false
	}

	s.activeID = id
	s.offset = pointer.Sub(origin)
	s.start = it.Pos()
	s.dragging = true

	observability.Interaction().OnDragStart(id, it.X, it.Y)
	return true
}

// Move places the active item at pointer - offset. Positions are not clamped
// to the canvas. It is a no-op when no drag is active and reports whether an
// item moved.
func (s *Session) Move(pointer furniture.Point) bool {
	if !s.dragging {
		return false
	}
	return s.layout.MoveTo(s.activeID, pointer.Sub(s.offset))
}

// Release ends the drag and rescores the layout. Releasing with no active
// drag does nothing and returns false.
func (s *Session) Release() bool {
	if !s.dragging {
		return false
	}

	id := s.activeID
	s.activeID = ""
	s.offset = furniture.Point{}
	s.dragging = false

	hooks := observability.Interaction()
	if it, ok := s.layout.Item(id); ok {
		hooks.OnDragEnd(id, s.start.X, s.start.Y, it.X, it.Y)
	}

	start := time.Now()
	score := s.layout.Rescore()
	hooks.OnScore(score, s.layout.Len(), time.Since(start))
	return true
}
