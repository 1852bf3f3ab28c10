// Package registry maps game ids to factories. Games register from init,
// so the CLI and the TUI can create them by id without importing the
// concrete game types.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/core-defense/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-step simulation the platform drives. It never touches
// the terminal: the platform maps keys and the pointer to an InputFrame,
// calls Step at the tick rate and draws Render output.
type Game interface {
	// ID is the stable identifier used for score storage.
	ID() string
	Title() string

	// Reset starts a fresh run sized to the terminal.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which is sized to the terminal.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a game instance. Each session gets its own.
type Factory func() Game

// Registry is a concurrency-safe set of game factories.
type Registry struct {
	mu    sync.RWMutex
	games map[string]entry
}

type entry struct {
	info    GameInfo
	factory Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{games: make(map[string]entry)}
}

// Register adds a factory under id. It panics on a duplicate id.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.games[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns the registered games ordered by id.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.games))
	for _, e := range r.games {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.games[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.games[id]
	return ok
}

var defaultRegistry = New()

// Register adds a factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List lists the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create creates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
