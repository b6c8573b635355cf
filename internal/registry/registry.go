// Package registry provides a global registry for pilot factories.
// Pilots register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/lander"
)

// Pilot is an input source that can fly an episode.
// Pilots contain pure decision logic; the episode owns all physics.
type Pilot interface {
	lander.InputSource

	// Name returns the registry ID the pilot was created under.
	Name() string
}

// Args carries the construction parameters a pilot may need.
type Args struct {
	ScriptPath string              // Input timeline file (script pilot)
	Config     config.LanderConfig // Constants the episode will run with
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new pilot.
type Factory func(args Args) (Pilot, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Typically called from a pilot's init() function.
// Panics if a pilot with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered pilots, sorted by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PilotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pilot by its ID.
// Returns ErrUnknownPilot if the ID is not registered.
func Create(id string, args Args) (Pilot, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPilot, id)
	}

	p, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create pilot %q: %w", id, err)
	}
	return p, nil
}

// Exists checks if a pilot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
