package stock

import "sort"

// Item names with non-generic aging rules bound out of the box.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
)

// Registry maps item names to aging strategies. Lookup is exact and
// case-sensitive; names without a binding resolve to the generic strategy.
type Registry struct {
	strategies map[string]Strategy
	fallback   Strategy
}

// NewRegistry returns a registry with the built-in bindings in place.
func NewRegistry() *Registry {
	r := &Registry{
		strategies: make(map[string]Strategy),
		fallback:   GenericStrategy{},
	}
	r.Register(NameAgedBrie, ImprovingStrategy{})
	r.Register(NameBackstagePass, EventStrategy{})
	r.Register(NameSulfuras, LegendaryStrategy{})
	return r
}

// Register binds name to strategy, replacing any existing binding.
// Bindings cannot be removed.
func (r *Registry) Register(name string, s Strategy) {
	r.strategies[name] = s
}

// Resolve returns the strategy bound to name, or the generic strategy
// when no binding exists.
func (r *Registry) Resolve(name string) Strategy {
	if s, ok := r.strategies[name]; ok {
		return s
	}
	return r.fallback
}

// Names returns all bound names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
