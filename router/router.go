// Package router dispatches child effects to handlers registered per
// concrete effect type. It saves parents with many children from growing a
// type switch over every effect they can receive: each handler is
// registered once, and Route turns an incoming effect into the batched
// commands of every handler for its type.
//
//	r := router.New()
//	router.Handle(r, func(e form.Submitted) tea.Cmd { return saveCmd(e.Value) })
//	router.HandleMsg(r, func(e form.Cancelled) tea.Msg { return closeOverlayMsg{} })
//
//	// in the parent's update:
//	case gotFormEffect:
//	    return m, r.Route(msg.effect)
//
// Dispatch is synchronous and keyed by the effect's concrete type; an
// effect with no registered handler routes to nil.
package router

import (
	"reflect"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Router routes effect values to handlers by concrete type. Use New; the
// zero value has no handler table.
type Router struct {
	handlers map[reflect.Type][]func(any) tea.Cmd
	mu       sync.RWMutex
}

// New creates an empty Router.
func New() *Router {
	return &Router{
		handlers: make(map[reflect.Type][]func(any) tea.Cmd),
	}
}

// Handle registers a command-producing handler for effects of type E.
// Multiple handlers for the same type run in registration order.
func Handle[E any](r *Router, fn func(E) tea.Cmd) {
	effectType := reflect.TypeOf((*E)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[effectType] = append(r.handlers[effectType], func(effect any) tea.Cmd {
		return fn(effect.(E))
	})
}

// HandleMsg registers a message-producing handler for effects of type E.
// The message is delivered through a command that resolves immediately, so
// it arrives on a later pass of the event loop like any other message.
func HandleMsg[E any](r *Router, fn func(E) tea.Msg) {
	Handle(r, func(effect E) tea.Cmd {
		return func() tea.Msg {
			return fn(effect)
		}
	})
}

// Route returns the batched commands of every handler registered for the
// effect's concrete type, in registration order. It returns nil when no
// handler matches or every handler returns nil.
func (r *Router) Route(effect any) tea.Cmd {
	effectType := reflect.TypeOf(effect)

	r.mu.RLock()
	handlers, ok := r.handlers[effectType]
	if !ok {
		r.mu.RUnlock()
		return nil
	}

	// Copy the handler slice to avoid holding the lock during execution
	handlersCopy := make([]func(any) tea.Cmd, len(handlers))
	copy(handlersCopy, handlers)
	r.mu.RUnlock()

	cmds := make([]tea.Cmd, 0, len(handlersCopy))
	for _, h := range handlersCopy {
		cmds = append(cmds, h(effect))
	}
	return tea.Batch(cmds...)
}

// HasHandlers returns true if any handler is registered for effect type E.
func HasHandlers[E any](r *Router) bool {
	effectType := reflect.TypeOf((*E)(nil)).Elem()

	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers, ok := r.handlers[effectType]
	return ok && len(handlers) > 0
}

// Clear removes all handlers for effect type E.
func Clear[E any](r *Router) {
	effectType := reflect.TypeOf((*E)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.handlers, effectType)
}
