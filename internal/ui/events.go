package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// EventMoveSettled is posted onto the event queue when a unit's walk
// animation finishes. Routing the notification through the queue keeps all
// selection-state transitions on the main loop goroutine.
type EventMoveSettled struct {
	tcell.EventTime
	UnitID uuid.UUID
}

// NewEventMoveSettled creates a settle event for the given unit.
func NewEventMoveSettled(id uuid.UUID) *EventMoveSettled {
	ev := &EventMoveSettled{UnitID: id}
	ev.SetEventNow()
	return ev
}

// EventRefresh requests a redraw. Walk animations post one per step so the
// unit is seen moving between cells.
type EventRefresh struct {
	tcell.EventTime
}

// NewEventRefresh creates a refresh event.
func NewEventRefresh() *EventRefresh {
	ev := &EventRefresh{}
	ev.SetEventNow()
	return ev
}
