package alerts

import (
	"time"
)

// ExternalEvent is the process-boundary view of one active event: its
// wire name plus every category the catalog binds for it.
type ExternalEvent struct {
	Name       string
	Categories []string
}

// EventSet accumulates the events asserted for the current control tick
// and tracks how long each has been continuously true.
//
// EventSet has exactly one owner (the control loop) and is not safe for
// concurrent use; producers must be serialized before Resolve runs.
type EventSet struct {
	catalog    Catalog
	tickPeriod time.Duration

	// active holds this tick's assertions in assertion order. Duplicates
	// are tolerated and collapse to one logical assertion at resolution.
	active []EventID

	// sticky events are reseeded into active on every Clear.
	sticky []EventID

	// ages maps every event ever seen to its consecutive-tick count.
	ages map[EventID]int
}

// NewEventSet creates an event set over the given catalog. Age counters
// start at zero for every cataloged event; events outside the catalog are
// tracked lazily on first Add.
func NewEventSet(catalog Catalog, tickPeriod time.Duration) *EventSet {
	ages := make(map[EventID]int, len(catalog))
	for id := range catalog {
		ages[id] = 0
	}
	return &EventSet{
		catalog:    catalog,
		tickPeriod: tickPeriod,
		ages:       ages,
	}
}

// Add asserts an event for the current tick. A sticky event persists
// across Clear calls without re-assertion. Unknown events are accepted
// and age-tracked but never resolve to alerts.
func (s *EventSet) Add(id EventID, sticky bool) {
	if sticky && !containsEvent(s.sticky, id) {
		s.sticky = append(s.sticky, id)
	}
	s.active = append(s.active, id)
	if _, ok := s.ages[id]; !ok {
		s.ages[id] = 0
	}
}

// Names returns the active events in assertion order.
func (s *EventSet) Names() []EventID {
	return s.active
}

// Len returns the number of assertions this tick.
func (s *EventSet) Len() int {
	return len(s.active)
}

// Age returns how many consecutive completed ticks the event has been
// active for.
func (s *EventSet) Age(id EventID) int {
	return s.ages[id]
}

// Any reports whether any active event has an alert bound to the given
// category. Used by the state machine to gate transitions without
// needing alert content.
func (s *EventSet) Any(ct Category) bool {
	for _, e := range s.active {
		if _, ok := s.catalog[e][ct]; ok {
			return true
		}
	}
	return false
}

// Clear ends the tick: events present this tick age by one, absent ones
// reset to zero, and the active list is reseeded from the sticky set.
// Must run exactly once per tick, after resolution.
func (s *EventSet) Clear() {
	for id := range s.ages {
		if containsEvent(s.active, id) {
			s.ages[id]++
		} else {
			s.ages[id] = 0
		}
	}
	s.active = append(s.active[:0:0], s.sticky...)
}

// AddExternal asserts events received from another process by wire name.
// Names the catalog's domain does not know are dropped silently; producer
// and catalog versions evolve independently and a mismatch must never
// stop the loop.
func (s *EventSet) AddExternal(names []string) {
	for _, name := range names {
		if id, ok := EventIDFromName(name); ok {
			s.Add(id, false)
		}
	}
}

// ToExternal publishes the active set: one entry per distinct active
// event, carrying every category the catalog binds for it.
func (s *EventSet) ToExternal() []ExternalEvent {
	out := make([]ExternalEvent, 0, len(s.active))
	seen := make(map[EventID]bool, len(s.active))
	for _, e := range s.active {
		if seen[e] {
			continue
		}
		seen[e] = true

		cats := s.catalog.Categories(e)
		names := make([]string, len(cats))
		for i, ct := range cats {
			names[i] = ct.String()
		}
		out = append(out, ExternalEvent{Name: e.String(), Categories: names})
	}
	return out
}

func containsEvent(list []EventID, id EventID) bool {
	for _, e := range list {
		if e == id {
			return true
		}
	}
	return false
}
