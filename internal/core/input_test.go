package core

import "testing"

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected Control
	}{
		{"ArrowLeft", ControlLeft},
		{"a", ControlLeft},
		{"A", ControlLeft},
		{"ArrowRight", ControlRight},
		{"d", ControlRight},
		{"ArrowUp", ControlThrust},
		{"w", ControlThrust},
		{" ", ControlThrust},
		{"x", ControlNone},
	}

	for _, tc := range tests {
		if got := km.Lookup(tc.key); got != tc.expected {
			t.Errorf("Lookup(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestKeyTrackerHeldState(t *testing.T) {
	tr := NewKeyTracker(nil)

	if !tr.State().Idle() {
		t.Error("new tracker should be idle")
	}

	tr.Press("ArrowUp")
	tr.Press("a")
	in := tr.State()
	if !in.Thrust || !in.Left || in.Right {
		t.Errorf("State() = %+v, expected thrust+left", in)
	}

	// Snapshot is stable until the next event
	if tr.State() != in {
		t.Error("State() should be stable between events")
	}

	tr.Release("ArrowUp")
	in = tr.State()
	if in.Thrust {
		t.Error("thrust should be released")
	}
	if !in.Left {
		t.Error("left should still be held")
	}
}

func TestKeyTrackerSharedControl(t *testing.T) {
	tr := NewKeyTracker(nil)

	// Two keys bound to thrust
	tr.Press("w")
	tr.Press(" ")
	tr.Release("w")

	if !tr.State().Thrust {
		t.Error("thrust should stay engaged while space is held")
	}

	tr.Release(" ")
	if tr.State().Thrust {
		t.Error("thrust should disengage once all keys are released")
	}
}

func TestKeyTrackerIgnoresUnbound(t *testing.T) {
	tr := NewKeyTracker(nil)
	tr.Press("q")
	if !tr.State().Idle() {
		t.Error("unbound keys should not engage controls")
	}

	tr.Press("d")
	tr.Reset()
	if !tr.State().Idle() {
		t.Error("Reset should release all keys")
	}
}

func TestControlString(t *testing.T) {
	if ControlThrust.String() != "Thrust" {
		t.Errorf("ControlThrust.String() = %q", ControlThrust.String())
	}
	if Control(99).String() != "Unknown" {
		t.Errorf("Control(99).String() = %q", Control(99).String())
	}
}
