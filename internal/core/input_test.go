package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionNorth) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionNorth)
	f.Set(ActionPause)
	if !f.Has(ActionNorth) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionNorth) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionNorth) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestZeroValueInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSouth) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionSouth)
	if !f.Has(ActionSouth) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestInputFrameShift(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Shift(); ok {
		t.Error("empty frame should carry no shift")
	}

	f.Set(ActionPause)
	f.Set(ActionSouthEast)
	f.Set(ActionNorthEast)
	a, ok := f.Shift()
	if !ok || a != ActionNorthEast {
		t.Errorf("Shift() = %v, %v; expected NorthEast (keyboard order wins)", a, ok)
	}
}

func TestActionIsShift(t *testing.T) {
	for _, a := range ShiftActions() {
		if !a.IsShift() {
			t.Errorf("%v should be a shift", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionPause, ActionCoords} {
		if a.IsShift() {
			t.Errorf("%v should not be a shift", a)
		}
	}
	if len(ShiftActions()) != 6 {
		t.Errorf("expected 6 shift actions, got %d", len(ShiftActions()))
	}
}
