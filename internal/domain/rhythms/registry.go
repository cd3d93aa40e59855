package rhythms

import (
	"fmt"
	"sync"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// Registry maps maker names to makers.
type Registry struct {
	mu     sync.RWMutex
	makers map[string]Maker
	order  []string
}

// NewRegistry registers makers in order.
func NewRegistry(makers ...Maker) *Registry {
	r := &Registry{makers: make(map[string]Maker)}
	for _, mk := range makers {
		r.Register(mk)
	}

	return r
}

// Default returns a registry with the built-in makers.
func Default() *Registry {
	return NewRegistry(
		NewNoteFilledMaker(),
		NewRestFilledMaker(),
		NewEqualUnitMaker(Eighths, m.NewDuration(1, 8)),
		NewEqualUnitMaker(Sixteenths, m.NewDuration(1, 16)),
		NewEqualUnitMaker(ThirtySecond, m.NewDuration(1, 32)),
	)
}

// Register adds or replaces a maker.
func (r *Registry) Register(mk Maker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.makers[mk.Name()]; !ok {
		r.order = append(r.order, mk.Name())
	}

	r.makers[mk.Name()] = mk
}

// Lookup returns the named maker.
func (r *Registry) Lookup(name string) (Maker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mk, ok := r.makers[name]
	if !ok {
		return nil, fmt.Errorf("%w: no rhythm maker named %q", m.ErrLookup, name)
	}

	return mk, nil
}

// Names lists makers in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
