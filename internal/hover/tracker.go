// Package hover implements the single-highlight state machine driven by
// pointer intersection queries.
//
//	NoHighlight --hit(c)--> Highlighted(c)
//	Highlighted(a) --hit(b), b != a--> Highlighted(b)   emits unhighlight(a), highlight(b)
//	Highlighted(a) --hit(a)--> Highlighted(a)           no events
//	Highlighted(a) --miss--> NoHighlight                emits unhighlight(a)
//
// A Tracker is not safe for concurrent use; callers serialise queries.
package hover

import (
	"sync"

	"github.com/globe-engine/internal/domain"
)

// Listener receives transitions synchronously, in emission order.
type Listener func(domain.HoverEvent)

// Tracker - конечный автомат подсветки
type Tracker struct {
	state domain.HoverState

	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewTracker returns a tracker in the NoHighlight state.
func NewTracker() *Tracker {
	return &Tracker{listeners: make(map[int]Listener)}
}

// State returns the current highlight.
func (t *Tracker) State() domain.HoverState {
	return t.state
}

// Current returns the highlighted country code, if any.
func (t *Tracker) Current() (string, bool) {
	return t.state.Code, t.state.Active
}

// Update consumes one intersection query result and returns the emitted
// transitions (zero, one or two events).
func (t *Tracker) Update(hits []domain.Intersection) []domain.HoverEvent {
	owner, ok := Nearest(hits)
	if !ok {
		return t.Reset()
	}
	if t.state.Active && t.state.Code == owner {
		return nil
	}

	events := make([]domain.HoverEvent, 0, 2)
	if t.state.Active {
		events = append(events, unhighlight(t.state.Code))
	}
	events = append(events, highlight(owner))
	t.state = domain.HoverState{Code: owner, Active: true}

	t.emit(events)
	return events
}

// Reset clears the highlight, emitting unhighlight when one was active.
func (t *Tracker) Reset() []domain.HoverEvent {
	if !t.state.Active {
		return nil
	}
	events := []domain.HoverEvent{unhighlight(t.state.Code)}
	t.state = domain.HoverState{}

	t.emit(events)
	return events
}

// Subscribe registers a listener. The returned func removes it; calling it
// more than once is a no-op. A nil listener is ignored.
func (t *Tracker) Subscribe(l Listener) (dispose func()) {
	if l == nil {
		return func() {}
	}

	id := t.nextID
	t.nextID++
	t.listeners[id] = l
	t.order = append(t.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			delete(t.listeners, id)
			for i, v := range t.order {
				if v == id {
					t.order = append(t.order[:i], t.order[i+1:]...)
					break
				}
			}
		})
	}
}

// emit walks a copy of order: listeners may subscribe or dispose while it runs.
// A listener disposed mid-emit gets no further events.
func (t *Tracker) emit(events []domain.HoverEvent) {
	order := make([]int, len(t.order))
	copy(order, t.order)

	for _, id := range order {
		for _, e := range events {
			l, ok := t.listeners[id]
			if !ok {
				break
			}
			l(e)
		}
	}
}

// Nearest picks the owner with the smallest distance; among exact ties the
// earliest entry wins.
func Nearest(hits []domain.Intersection) (string, bool) {
	if len(hits) == 0 {
		return "", false
	}
	best := 0
	for i := 1; i < len(hits); i++ {
		if hits[i].Distance < hits[best].Distance {
			best = i
		}
	}
	return hits[best].Owner, true
}

func highlight(code string) domain.HoverEvent {
	return domain.HoverEvent{Type: domain.HoverHighlight, Code: code, Style: domain.HighlightBorderStyle}
}

func unhighlight(code string) domain.HoverEvent {
	return domain.HoverEvent{Type: domain.HoverUnhighlight, Code: code, Style: domain.NormalBorderStyle}
}
