package subtea

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Merge folds one child's init contribution into a parent's accumulated
// (model, command) pair. The model passes through unchanged; the command
// becomes the batch of the accumulator's command and the child's, in that
// order. Init and InitWithEffect return one Merge per child so parents can
// chain them across submodules.
type Merge[P any] func(P, tea.Cmd) (P, tea.Cmd)

// Init merges an effect-less child's init result into the parent. The
// child's model is returned unchanged; the Merge batches the child's
// command, remapped through toMsg, after the parent's.
func Init[S, P any](toMsg func(tea.Msg) tea.Msg, model S, cmd tea.Cmd) (S, Merge[P]) {
	return model, func(parent P, parentCmd tea.Cmd) (P, tea.Cmd) {
		return parent, batchCmds(parentCmd, mapCmd(toMsg, cmd))
	}
}

// InitWithEffect is Init for children whose init result carries a Cmd[E].
func InitWithEffect[S, P, E any](toMsg func(tea.Msg) tea.Msg, effectToMsg func(E) tea.Msg, model S, cmd Cmd[E]) (S, Merge[P]) {
	return model, func(parent P, parentCmd tea.Cmd) (P, tea.Cmd) {
		return parent, batchCmds(parentCmd, ToCmd(cmd, toMsg, effectToMsg))
	}
}

// Fold applies Merge combinators to the accumulator in order.
func Fold[P any](model P, cmd tea.Cmd, merges ...Merge[P]) (P, tea.Cmd) {
	for _, merge := range merges {
		model, cmd = merge(model, cmd)
	}
	return model, cmd
}

// Update merges an effect-less child's update result into the parent:
// toModel stores the child model in the parent, toMsg rewraps the child's
// command so its message comes back addressed to the child.
func Update[S, P any](toModel func(S) P, toMsg func(tea.Msg) tea.Msg, model S, cmd tea.Cmd) (P, tea.Cmd) {
	return toModel(model), mapCmd(toMsg, cmd)
}

// UpdateWithEffect is Update for children whose update result carries a
// Cmd[E]. Effects are translated through effectToMsg into parent-level
// messages; see ToCmd.
func UpdateWithEffect[S, P, E any](toModel func(S) P, toMsg func(tea.Msg) tea.Msg, effectToMsg func(E) tea.Msg, model S, cmd Cmd[E]) (P, tea.Cmd) {
	return toModel(model), ToCmd(cmd, toMsg, effectToMsg)
}

// ToCmd flattens a Cmd[E] into a plain tea.Cmd:
//
//   - internal tea.Cmds are rewrapped so their eventual message passes
//     through toMsg
//   - each effect becomes a command that resolves immediately to
//     effectToMsg(effect), so the runtime delivers it as an ordinary
//     message on a later pass of the event loop
//   - batches flatten recursively in order via tea.Batch
//
// The result is nil when the command contains no work, matching Bubble
// Tea's convention for "no command".
func ToCmd[E any](c Cmd[E], toMsg func(tea.Msg) tea.Msg, effectToMsg func(E) tea.Msg) tea.Cmd {
	switch c.kind {
	case kindEffect:
		effect := c.effect
		return func() tea.Msg {
			return effectToMsg(effect)
		}
	case kindBatch:
		cmds := make([]tea.Cmd, len(c.items))
		for i, item := range c.items {
			cmds[i] = ToCmd(item, toMsg, effectToMsg)
		}
		return tea.Batch(cmds...)
	default:
		return mapCmd(toMsg, c.cmd)
	}
}

// batchCmds batches two commands without a wrapper when either is nil.
func batchCmds(a, b tea.Cmd) tea.Cmd {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return tea.Batch(a, b)
}
