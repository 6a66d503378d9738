package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventVariableResolved EventType = "variable_resolved"
	EventVariableFailed   EventType = "variable_failed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// VariableEvent reports the outcome of resolving one leaf.
// Values are never carried: secrets must not leak into hooks.
type VariableEvent struct {
	EventBase
	Binding
	Valid bool `json:"valid"`
}

// NewVariableEvent builds the event for b.
func NewVariableEvent(b Binding, valid bool) *VariableEvent {
	typ := EventVariableResolved
	if !valid {
		typ = EventVariableFailed
	}
	return &VariableEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: typ},
		Binding:   b,
		Valid:     valid,
	}
}

// LifecycleHooks defines callbacks for resolver observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnResolve func(*VariableEvent)
	OnFailure func(*VariableEvent)
}

// Emit dispatches e to the matching callback.
func (h LifecycleHooks) Emit(e *VariableEvent) {
	switch e.Type {
	case EventVariableResolved:
		if h.OnResolve != nil {
			h.OnResolve(e)
		}
	case EventVariableFailed:
		if h.OnFailure != nil {
			h.OnFailure(e)
		}
	}
}
