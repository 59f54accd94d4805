// Package registry provides a global registry for game hosts.
// Hosts register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Host drives the simulation: it owns the loop, translates input into actions
// and draws the scene. The simulation itself never depends on a host.
type Host interface {
	// ID returns a unique identifier for this host (e.g., "tui", "window").
	// Used for the --host flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the player quits or the host fails.
	Run(opts RunOptions) error
}

// RunOptions is everything a host needs to start a session.
type RunOptions struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a host.
type Factory func() Host

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a host factory to the registry.
// Typically called from a host's init() function.
// Panics if a host with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered hosts, sorted by ID.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(factories))
	for id := range factories {
		result = append(result, HostInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new host by its ID.
// Returns an error if the host ID is not registered.
func Create(id string) (Host, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown host %q", id)
	}

	return f(), nil
}

// Exists checks if a host with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
