package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ListenerHandler reacts to an event dispatched to a rendered element.
type ListenerHandler func(msg tea.Msg) tea.Cmd

type listenerEntry struct {
	event   string
	handler ListenerHandler
}

// ListenerRegistry tracks every handler a block attaches to its
// rendered elements. It is the sole source of truth for teardown: a
// handler not registered here is never dispatched, and releasing an
// element removes exactly what was registered on it, in registration
// order.
type ListenerRegistry struct {
	order     []string
	listeners map[string][]listenerEntry
}

// NewListenerRegistry creates an empty registry.
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{
		listeners: make(map[string][]listenerEntry),
	}
}

// Register attaches a handler for an event on the given element.
// Registering the same element/event pair again adds a second entry;
// dispatch uses the most recent one.
func (r *ListenerRegistry) Register(elementID, event string, handler ListenerHandler) {
	if handler == nil {
		return
	}
	if _, exists := r.listeners[elementID]; !exists {
		r.order = append(r.order, elementID)
	}
	r.listeners[elementID] = append(r.listeners[elementID], listenerEntry{
		event:   event,
		handler: handler,
	})
}

// Handler returns the most recently registered handler for the
// element/event pair, if any.
func (r *ListenerRegistry) Handler(elementID, event string) (ListenerHandler, bool) {
	entries := r.listeners[elementID]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].event == event {
			return entries[i].handler, true
		}
	}
	return nil, false
}

// Dispatch invokes the handler for the element/event pair with the
// triggering message. Unknown pairs are a no-op.
func (r *ListenerRegistry) Dispatch(elementID, event string, msg tea.Msg) tea.Cmd {
	handler, ok := r.Handler(elementID, event)
	if !ok {
		return nil
	}
	return handler(msg)
}

// ReleaseFor removes every handler registered on the element and
// returns how many were removed. Releasing an element with no entries
// is a no-op, never a failure.
func (r *ListenerRegistry) ReleaseFor(elementID string) int {
	entries, exists := r.listeners[elementID]
	if !exists {
		return 0
	}
	delete(r.listeners, elementID)
	for i, id := range r.order {
		if id == elementID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return len(entries)
}

// ReleaseAll removes every registered handler, in the order the
// elements were first registered, and returns the total removed.
func (r *ListenerRegistry) ReleaseAll() int {
	removed := 0
	for _, elementID := range r.order {
		removed += len(r.listeners[elementID])
		delete(r.listeners, elementID)
	}
	r.order = nil
	return removed
}

// Len returns the number of registered handlers across all elements.
func (r *ListenerRegistry) Len() int {
	total := 0
	for _, entries := range r.listeners {
		total += len(entries)
	}
	return total
}

// Elements returns the element ids with registrations, in first
// registration order.
func (r *ListenerRegistry) Elements() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
