package subtea

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// observe flattens a command with the standard test translators and returns
// the ordered messages it resolves to.
func observe(c Cmd[testEffect]) []tea.Msg {
	return collectMsgs(ToCmd(c, wrapParent, effectToMsg))
}

func tagMsg(suffix string) func(tea.Msg) tea.Msg {
	return func(m tea.Msg) tea.Msg {
		if cm, ok := m.(childMsg); ok {
			return childMsg{tag: cm.tag + suffix}
		}
		return m
	}
}

func tagEffect(suffix string) func(testEffect) testEffect {
	return func(e testEffect) testEffect {
		return testEffect{value: e.value + suffix}
	}
}

// sampleCmds covers every variant, including nesting and empty batches.
func sampleCmds() map[string]Cmd[testEffect] {
	return map[string]Cmd[testEffect]{
		"none":   None[testEffect](),
		"wrap":   Wrap[testEffect](msgCmd(childMsg{tag: "a"})),
		"emit":   Emit[testEffect](testEffect{value: "e"}),
		"batch":  Batch(Wrap[testEffect](msgCmd(childMsg{tag: "a"})), Emit[testEffect](testEffect{value: "e"})),
		"nested": Batch(Batch(Emit[testEffect](testEffect{value: "e1"}), None[testEffect]()), Wrap[testEffect](msgCmd(childMsg{tag: "a"})), Batch[testEffect]()),
	}
}

func TestMapBothIdentity(t *testing.T) {
	idMsg := func(m tea.Msg) tea.Msg { return m }
	idEffect := func(e testEffect) testEffect { return e }

	for name, c := range sampleCmds() {
		t.Run(name, func(t *testing.T) {
			got := observe(MapBoth(idMsg, idEffect, c))
			want := observe(c)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("MapBoth(id, id) changed observable messages: got %v, want %v", got, want)
			}
		})
	}
}

func TestMapBothComposition(t *testing.T) {
	f1, f2 := tagMsg("+f1"), tagMsg("+f2")
	g1, g2 := tagEffect("+g1"), tagEffect("+g2")

	composedMsg := func(m tea.Msg) tea.Msg { return f2(f1(m)) }
	composedEffect := func(e testEffect) testEffect { return g2(g1(e)) }

	for name, c := range sampleCmds() {
		t.Run(name, func(t *testing.T) {
			twice := observe(MapBoth(f2, g2, MapBoth(f1, g1, c)))
			once := observe(MapBoth(composedMsg, composedEffect, c))
			if !reflect.DeepEqual(twice, once) {
				t.Errorf("composed maps differ: two passes %v, one pass %v", twice, once)
			}
		})
	}
}

func TestMapMsgLeavesEffectsUntouched(t *testing.T) {
	c := Batch(
		Wrap[testEffect](msgCmd(childMsg{tag: "a"})),
		Emit[testEffect](testEffect{value: "e"}),
	)

	msgs := observe(MapMsg(tagMsg("+m"), c))
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	wrapped := msgs[0].(parentMsg)
	if inner := wrapped.inner.(childMsg); inner.tag != "a+m" {
		t.Errorf("internal message tag = %q, want %q", inner.tag, "a+m")
	}
	if got := msgs[1].(gotEffect); got.effect.value != "e" {
		t.Errorf("effect value = %q, want untouched %q", got.effect.value, "e")
	}
}

func TestMapEffectChangesEffectType(t *testing.T) {
	type sized struct{ n int }

	c := Batch(
		Emit[testEffect](testEffect{value: "abc"}),
		Wrap[testEffect](msgCmd(childMsg{tag: "a"})),
	)
	mapped := MapEffect(func(e testEffect) sized { return sized{n: len(e.value)} }, c)

	msgs := collectMsgs(ToCmd(mapped, wrapParent, func(e sized) tea.Msg { return e }))
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if got, ok := msgs[0].(sized); !ok || got.n != 3 {
		t.Errorf("mapped effect = %+v, want sized{3}", msgs[0])
	}
	wrapped := msgs[1].(parentMsg)
	if inner := wrapped.inner.(childMsg); inner.tag != "a" {
		t.Errorf("internal message tag = %q, want untouched %q", inner.tag, "a")
	}
}

func TestMapMsgRecursesIntoTeaBatch(t *testing.T) {
	// A child may itself return tea.Batch; remapping must reach each member.
	c := Wrap[testEffect](tea.Batch(
		msgCmd(childMsg{tag: "a"}),
		msgCmd(childMsg{tag: "b"}),
	))

	msgs := observe(MapMsg(tagMsg("+m"), c))
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	want := []string{"a+m", "b+m"}
	for i, m := range msgs {
		inner := m.(parentMsg).inner.(childMsg)
		if inner.tag != want[i] {
			t.Errorf("message %d tag = %q, want %q", i, inner.tag, want[i])
		}
	}
}

func TestMapNilMessageStaysNil(t *testing.T) {
	c := Wrap[testEffect](func() tea.Msg { return nil })

	cmd := ToCmd(MapMsg(tagMsg("+m"), c), wrapParent, effectToMsg)
	if cmd == nil {
		t.Fatal("command is nil, want non-nil wrapper")
	}
	if msgs := collectMsgs(cmd); len(msgs) != 0 {
		t.Errorf("got %d messages, want 0", len(msgs))
	}
}
