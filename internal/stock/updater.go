package stock

// Updater owns the inventory and advances it one simulated day at a time.
// It is not safe for concurrent use; the simulation is strictly
// single-threaded and each item is updated independently.
type Updater struct {
	items    []*Item
	registry *Registry
}

// NewUpdater returns an updater over items. Items are updated in the order
// given. A nil registry gets the built-in bindings.
func NewUpdater(items []*Item, registry *Registry) *Updater {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Updater{items: items, registry: registry}
}

// Registry exposes the selector so callers can add bindings before the
// simulation starts.
func (u *Updater) Registry() *Registry {
	return u.registry
}

// Items returns the underlying collection. Callers read mutated values
// back from it after Tick.
func (u *Updater) Items() []*Item {
	return u.items
}

// Tick advances the inventory by one day. For each item, in collection
// order, the resolved strategy adjusts quality first and days-to-sell
// second. An empty inventory is a no-op.
func (u *Updater) Tick() {
	for _, it := range u.items {
		s := u.registry.Resolve(it.Name)
		s.UpdateQuality(it)
		s.UpdateDaysToSell(it)
	}
}
