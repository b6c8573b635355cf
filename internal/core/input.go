package core

// InputState is the control snapshot for a single simulation tick.
// It is owned by the input provider; the simulation only reads it.
type InputState struct {
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Thrust bool `yaml:"thrust"`
}

// Idle reports whether no control is engaged.
func (in InputState) Idle() bool {
	return !in.Left && !in.Right && !in.Thrust
}

// Control represents a semantic lander control, abstracted from physical keys.
type Control int

const (
	ControlNone   Control = iota
	ControlLeft           // ArrowLeft, a - rotate counter-clockwise
	ControlRight          // ArrowRight, d - rotate clockwise
	ControlThrust         // ArrowUp, w, space - main engine
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlThrust:
		return "Thrust"
	default:
		return "Unknown"
	}
}

// KeyMap translates key names to controls.
type KeyMap map[string]Control

// DefaultKeyMap returns the standard bindings: arrows, WASD and space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"ArrowLeft":  ControlLeft,
		"a":          ControlLeft,
		"A":          ControlLeft,
		"ArrowRight": ControlRight,
		"d":          ControlRight,
		"D":          ControlRight,
		"ArrowUp":    ControlThrust,
		"w":          ControlThrust,
		"W":          ControlThrust,
		" ":          ControlThrust,
	}
}

// Lookup returns the control bound to key, or ControlNone.
func (km KeyMap) Lookup(key string) Control {
	if km == nil {
		return ControlNone
	}
	return km[key]
}

// KeyTracker keeps held-key state between press and release events and
// produces an InputState snapshot on demand. Several keys may hold the
// same control; the control stays engaged until all of them are released.
type KeyTracker struct {
	keys KeyMap
	held map[string]bool
}

// NewKeyTracker creates a tracker for the given bindings.
// A nil map uses DefaultKeyMap.
func NewKeyTracker(keys KeyMap) *KeyTracker {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &KeyTracker{
		keys: keys,
		held: make(map[string]bool),
	}
}

// Press records a key going down. Unbound keys are ignored.
func (t *KeyTracker) Press(key string) {
	if t.keys.Lookup(key) == ControlNone {
		return
	}
	t.held[key] = true
}

// Release records a key going up.
func (t *KeyTracker) Release(key string) {
	delete(t.held, key)
}

// Reset releases every key.
func (t *KeyTracker) Reset() {
	for k := range t.held {
		delete(t.held, k)
	}
}

// State returns the current input snapshot.
func (t *KeyTracker) State() InputState {
	var in InputState
	for key := range t.held {
		switch t.keys.Lookup(key) {
		case ControlLeft:
			in.Left = true
		case ControlRight:
			in.Right = true
		case ControlThrust:
			in.Thrust = true
		}
	}
	return in
}
