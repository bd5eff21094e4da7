package stock

// Quality bounds enforced for every category except legendary items.
const (
	MinQuality = 0
	MaxQuality = 50
)

// Strategy adjusts one item for a single simulated day.
//
// The Updater always calls UpdateQuality before UpdateDaysToSell. The
// ordering is load-bearing: the daily quality delta is computed on the
// pre-decrement days-to-sell value, while past-due effects are checked
// after the decrement.
type Strategy interface {
	UpdateQuality(it *Item)
	UpdateDaysToSell(it *Item)
}

// Kind identifies one of the built-in rule sets. Config files use these
// names to bind extra items onto a category.
type Kind string

// Built-in category kinds.
const (
	KindGeneric   Kind = "generic"
	KindImproving Kind = "improving"
	KindEvent     Kind = "event"
	KindLegendary Kind = "legendary"
)

// StrategyForKind returns the built-in strategy for kind. The second
// return is false for unknown kinds.
func StrategyForKind(k Kind) (Strategy, bool) {
	switch k {
	case KindGeneric:
		return GenericStrategy{}, true
	case KindImproving:
		return ImprovingStrategy{}, true
	case KindEvent:
		return EventStrategy{}, true
	case KindLegendary:
		return LegendaryStrategy{}, true
	default:
		return nil, false
	}
}

// KindOf reports the kind of a built-in strategy. The second return is
// false for strategies registered from outside this package.
func KindOf(s Strategy) (Kind, bool) {
	switch s.(type) {
	case GenericStrategy:
		return KindGeneric, true
	case ImprovingStrategy:
		return KindImproving, true
	case EventStrategy:
		return KindEvent, true
	case LegendaryStrategy:
		return KindLegendary, true
	default:
		return "", false
	}
}

func clampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// GenericStrategy covers ordinary goods: quality decays by one per day,
// twice as fast once the item is past due.
type GenericStrategy struct{}

func (GenericStrategy) UpdateQuality(it *Item) {
	it.Quality = clampQuality(it.Quality - 1)
}

func (GenericStrategy) UpdateDaysToSell(it *Item) {
	it.DaysToSell--
	if it.PastDue() {
		it.Quality = clampQuality(it.Quality - 1)
	}
}

// ImprovingStrategy covers goods that gain value as they age, such as
// cellared cheese. Quality climbs by one per day, twice as fast once past
// due, and never exceeds MaxQuality.
type ImprovingStrategy struct{}

func (ImprovingStrategy) UpdateQuality(it *Item) {
	it.Quality = clampQuality(it.Quality + 1)
}

func (ImprovingStrategy) UpdateDaysToSell(it *Item) {
	it.DaysToSell--
	if it.PastDue() {
		it.Quality = clampQuality(it.Quality + 1)
	}
}

// Urgency tier boundaries for event items, evaluated on the pre-decrement
// days-to-sell value.
const (
	urgentWindow = 6
	soonWindow   = 11
)

// EventStrategy covers ticket-like goods whose quality climbs as the event
// approaches and collapses to zero once it has passed.
type EventStrategy struct{}

func (EventStrategy) UpdateQuality(it *Item) {
	it.Quality = clampQuality(it.Quality + urgencyBonus(it.DaysToSell))
}

func (EventStrategy) UpdateDaysToSell(it *Item) {
	it.DaysToSell--
	if it.PastDue() {
		// Hard reset, not a decrement: the bonus applied earlier in the
		// same tick is wiped as well.
		it.Quality = MinQuality
	}
}

func urgencyBonus(daysToSell int) int {
	switch {
	case daysToSell < urgentWindow:
		return 3
	case daysToSell < soonWindow:
		return 2
	default:
		return 1
	}
}

// LegendaryStrategy never changes an item. Legendary items are exempt from
// the quality bounds, so even out-of-range values are left untouched.
type LegendaryStrategy struct{}

func (LegendaryStrategy) UpdateQuality(*Item) {}

func (LegendaryStrategy) UpdateDaysToSell(*Item) {}
