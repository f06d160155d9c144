package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("empty frame reports ActionUp")
	}

	f.Set(ActionUp)
	f.Set(ActionInteract)
	if !f.Has(ActionUp) || !f.Has(ActionInteract) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionInteract) {
		t.Error("actions survived Clear")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero-value frame did not stick")
	}
}

func TestCardIndex(t *testing.T) {
	tests := []struct {
		action Action
		want   int
		ok     bool
	}{
		{ActionCard1, 0, true},
		{ActionCard5, 4, true},
		{ActionCard10, 9, true},
		{ActionUp, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := CardIndex(tt.action)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CardIndex(%v) = (%d, %v), want (%d, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCardToggles(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionCard7)
	f.Set(ActionCard2)
	f.Set(ActionInteract)

	got := f.CardToggles()
	if len(got) != 2 || got[0] != 1 || got[1] != 6 {
		t.Errorf("CardToggles() = %v, want [1 6]", got)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStore)

	c := f.Clone()
	c.Set(ActionCycle)

	if f.Has(ActionCycle) {
		t.Error("mutating the clone changed the original")
	}
	if !c.Has(ActionStore) {
		t.Error("clone missing original action")
	}
}
