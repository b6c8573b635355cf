package pilot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
	"github.com/vovakirdan/lander/internal/registry"
)

// ErrInvalidScript is returned when an input script cannot be used.
var ErrInvalidScript = errors.New("pilot: invalid script")

func init() {
	registry.Register(ScriptID, "Scripted input timeline", func(args registry.Args) (registry.Pilot, error) {
		if args.ScriptPath == "" {
			return nil, fmt.Errorf("%w: --script is required", ErrInvalidScript)
		}
		return LoadScript(args.ScriptPath)
	})
}

// Step holds one input state for a number of ticks. Controls can be given
// directly or as held key names ("ArrowUp", "a", " ", ...).
type Step struct {
	Ticks  int      `yaml:"ticks"`
	Left   bool     `yaml:"left"`
	Right  bool     `yaml:"right"`
	Thrust bool     `yaml:"thrust"`
	Keys   []string `yaml:"keys"`

	held core.InputState // Controls resolved from Keys
}

// Input returns the control state the step holds.
func (s Step) Input() core.InputState {
	return core.InputState{
		Left:   s.Left || s.held.Left,
		Right:  s.Right || s.held.Right,
		Thrust: s.Thrust || s.held.Thrust,
	}
}

// Script replays a fixed input timeline indexed by tick number.
// Once the timeline is exhausted it either repeats or releases all controls.
//
// Example:
//
//	repeat: false
//	steps:
//	  - ticks: 120
//	  - ticks: 30
//	    thrust: true
//	  - ticks: 5
//	    keys: [a, ArrowUp]
type Script struct {
	Repeat bool   `yaml:"repeat"`
	Steps  []Step `yaml:"steps"`

	total int
}

// ParseScript decodes and validates a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	keys := core.DefaultKeyMap()
	tracker := core.NewKeyTracker(keys)
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Ticks <= 0 {
			return nil, fmt.Errorf("%w: step %d: ticks must be positive, got %d", ErrInvalidScript, i, st.Ticks)
		}
		tracker.Reset()
		for _, k := range st.Keys {
			if keys.Lookup(k) == core.ControlNone {
				return nil, fmt.Errorf("%w: step %d: unbound key %q", ErrInvalidScript, i, k)
			}
			tracker.Press(k)
		}
		st.held = tracker.State()
		s.total += st.Ticks
	}
	return &s, nil
}

// LoadScript reads an input script from a file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pilot: cannot read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Name returns the pilot ID.
func (s *Script) Name() string { return ScriptID }

// Len returns the number of ticks one pass of the timeline covers.
func (s *Script) Len() int { return s.total }

// Next returns the input scheduled for the snapshot's tick.
func (s *Script) Next(snap lander.Snapshot) core.InputState {
	return s.At(snap.Tick)
}

// At returns the input scheduled for the given tick.
func (s *Script) At(tick int) core.InputState {
	if tick < 0 || s.total == 0 {
		return core.InputState{}
	}
	if tick >= s.total {
		if !s.Repeat {
			return core.InputState{}
		}
		tick %= s.total
	}
	for _, st := range s.Steps {
		if tick < st.Ticks {
			return st.Input()
		}
		tick -= st.Ticks
	}
	return core.InputState{}
}
