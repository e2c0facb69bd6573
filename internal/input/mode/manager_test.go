package mode

import "testing"

func TestManagerStartsInNormal(t *testing.T) {
	m := NewManager()
	if m.CurrentName() != ModeNormal {
		t.Errorf("CurrentName() = %q, want %q", m.CurrentName(), ModeNormal)
	}
	if m.Previous() != nil {
		t.Error("Previous() should be nil before any switch")
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewManager()
	m.Switch(Insert{})

	if !m.IsMode(ModeInsert) {
		t.Errorf("CurrentName() = %q, want %q", m.CurrentName(), ModeInsert)
	}
	if m.Previous().Name() != ModeNormal {
		t.Errorf("Previous() = %q, want %q", m.Previous().Name(), ModeNormal)
	}
	if !m.IsAnyMode(ModeSelect, ModeInsert) {
		t.Error("IsAnyMode should match insert")
	}
}

func TestManagerSwitchReplacesAnchor(t *testing.T) {
	m := NewManager()
	m.Switch(SelectLine{Anchor: 1})
	m.Switch(SelectLine{Anchor: 4})

	sl, ok := m.Current().(SelectLine)
	if !ok || sl.Anchor != 4 {
		t.Errorf("Current() = %#v, want SelectLine{Anchor: 4}", m.Current())
	}
}

func TestManagerOnChange(t *testing.T) {
	m := NewManager()

	var from, to string
	unregister := m.OnChange(func(f, n Mode) {
		from, to = f.Name(), n.Name()
	})

	m.Switch(Select{})
	if from != ModeNormal || to != ModeSelect {
		t.Errorf("callback got %s -> %s, want normal -> select", from, to)
	}

	m.Update(Search{Query: "x"})
	if to != ModeSelect {
		t.Error("Update should not notify listeners")
	}

	unregister()
	m.Switch(Normal{})
	if to != ModeSelect {
		t.Error("callback called after unregister")
	}
}
