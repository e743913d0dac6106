package subtea

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// kind discriminates the Cmd variants.
type kind int

const (
	kindCmd kind = iota
	kindEffect
	kindBatch
)

// Cmd is the command half of a child component's update result. It carries
// either a regular tea.Cmd the child resolves itself, a single effect value
// of type E addressed to the parent, or an ordered batch of both.
//
// A Cmd is immutable once constructed.
type Cmd[E any] struct {
	kind   kind
	cmd    tea.Cmd
	effect E
	items  []Cmd[E]
}

// None returns a command that carries no tea.Cmd and no effect.
func None[E any]() Cmd[E] {
	return Cmd[E]{kind: kindCmd}
}

// Wrap tags a tea.Cmd as internal to the child: its message will be routed
// back into the child's update function, not surfaced to the parent.
// Wrap(nil) is equivalent to None.
func Wrap[E any](c tea.Cmd) Cmd[E] {
	return Cmd[E]{kind: kindCmd, cmd: c}
}

// Emit tags an effect value as addressed to the parent. Flattening turns it
// into exactly one parent-level message on a later pass of the event loop.
func Emit[E any](effect E) Cmd[E] {
	return Cmd[E]{kind: kindEffect, effect: effect}
}

// Batch combines commands into one. Order is preserved through flattening;
// nothing is deduplicated or reordered. Batch() is equivalent to None.
func Batch[E any](cmds ...Cmd[E]) Cmd[E] {
	items := make([]Cmd[E], len(cmds))
	copy(items, cmds)
	return Cmd[E]{kind: kindBatch, items: items}
}

// EffectType returns the name of an effect's concrete type, e.g.
// "form.Submitted". Useful as a logging or metric attribute.
func EffectType(effect any) string {
	if effect == nil {
		return "<nil>"
	}
	return reflect.TypeOf(effect).String()
}
