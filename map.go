package subtea

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MapBoth rewrites a command's internal messages with f and its effect
// values with g in a single recursive pass. Batch structure is preserved:
// the result has the same shape, only the leaves change.
func MapBoth[E1, E2 any](f func(tea.Msg) tea.Msg, g func(E1) E2, c Cmd[E1]) Cmd[E2] {
	switch c.kind {
	case kindEffect:
		return Cmd[E2]{kind: kindEffect, effect: g(c.effect)}
	case kindBatch:
		items := make([]Cmd[E2], len(c.items))
		for i, item := range c.items {
			items[i] = MapBoth(f, g, item)
		}
		return Cmd[E2]{kind: kindBatch, items: items}
	default:
		return Cmd[E2]{kind: kindCmd, cmd: mapCmd(f, c.cmd)}
	}
}

// MapMsg rewrites the messages produced by the command's internal tea.Cmds,
// leaving effects untouched.
func MapMsg[E any](f func(tea.Msg) tea.Msg, c Cmd[E]) Cmd[E] {
	return MapBoth(f, func(e E) E { return e }, c)
}

// MapEffect rewrites the command's effect values, leaving internal tea.Cmds
// untouched.
func MapEffect[E1, E2 any](g func(E1) E2, c Cmd[E1]) Cmd[E2] {
	return MapBoth(func(m tea.Msg) tea.Msg { return m }, g, c)
}

// mapCmd returns a tea.Cmd producing f of the original command's message.
// A nil command stays nil, a nil message stays nil, and messages built with
// tea.Batch are remapped member by member so f only ever sees leaf messages.
// Commands built with tea.Sequence cannot be unpacked from the outside; f
// must be prepared to receive their messages as-is.
func mapCmd(f func(tea.Msg) tea.Msg, c tea.Cmd) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		msg := c()
		if msg == nil {
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			mapped := make([]tea.Cmd, len(batch))
			for i, bc := range batch {
				mapped[i] = mapCmd(f, bc)
			}
			return tea.BatchMsg(mapped)
		}
		return f(msg)
	}
}
