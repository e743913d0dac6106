// Package subtea composes child Bubble Tea components into parents with
// typed effects.
//
// A plain Bubble Tea child can only hand its parent a tea.Cmd. When the
// child needs to tell the parent something directly ("the form was
// submitted", "close me"), the usual workarounds are shared message types
// or out-of-band channels. subtea gives the child a third option: its
// update function returns a Cmd[E] that is either a regular tea.Cmd the
// child resolves itself, an effect value of type E addressed to the
// parent, or an ordered batch of both.
//
// # Child side
//
// A child declares an effect type and returns Cmd[E] from its update:
//
//	type Effect interface{ isEffect() }
//
//	type Submitted struct{ Value string }
//
//	func (m Model) Update(msg tea.Msg) (Model, subtea.Cmd[Effect]) {
//	    switch msg := msg.(type) {
//	    case tea.KeyMsg:
//	        if msg.String() == "enter" {
//	            return m, subtea.Emit[Effect](Submitted{Value: m.input})
//	        }
//	    }
//	    return m, subtea.None[Effect]()
//	}
//
// Batch combines commands and effects in one result:
//
//	return m, subtea.Batch(
//	    subtea.Wrap[Effect](textinput.Blink),
//	    subtea.Emit[Effect](Submitted{Value: m.input}),
//	)
//
// # Parent side
//
// The parent merges the child result into its own (model, tea.Cmd) pair.
// UpdateWithEffect rewraps the child's internal commands so their messages
// come back addressed to the child, and turns each effect into a command
// that resolves immediately to a parent-level message:
//
//	case formMsg:
//	    sub, cmd := m.form.Update(msg.inner)
//	    return subtea.UpdateWithEffect(
//	        func(f form.Model) Model { m.form = f; return m },
//	        wrapFormMsg,
//	        func(e form.Effect) tea.Msg { return gotFormEffect{e} },
//	        sub, cmd,
//	    )
//
// During Init, each child contributes a Merge combinator that batches its
// startup command into the parent's accumulator; combinators chain in call
// order:
//
//	f, fCmd := form.New()
//	f, mergeForm := subtea.InitWithEffect[form.Model, Model](wrapFormMsg, formEffect, f, fCmd)
//	l, mergeList := subtea.Init[list.Model, Model](wrapListMsg, list.New(), nil)
//	m := Model{form: f, list: l}
//	return subtea.Fold(m, nil, mergeForm, mergeList)
//
// # Delivery guarantees
//
// Every operation here is a synchronous, total transformation; nothing
// blocks and nothing fails. An effect flattens to exactly one message
// delivered on a later pass of the Bubble Tea event loop, and batches
// keep their order through arbitrary nesting. Scheduling of sibling
// commands inside a tea.Batch remains concurrent, exactly as Bubble Tea
// defines it.
//
// The router subpackage adds per-type effect dispatch for parents that
// handle many effect types, and the otel subpackage adds optional
// OpenTelemetry instrumentation for effect traffic.
package subtea
