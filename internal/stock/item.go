// Package stock implements the aging rules for the stockroom inventory.
//
// Every item carries a quality score and a days-to-sell counter. Once per
// simulated day the Updater applies a category strategy to each item: the
// quality moves by the category's daily delta, then days-to-sell drops by
// one and any past-due effect kicks in. Categories are resolved by item
// name through a Registry; names without a binding age as generic goods.
package stock

// Item is a single inventory record. The name doubles as the category
// dispatch key. DaysToSell may go negative, meaning the item is past due.
type Item struct {
	Name       string
	DaysToSell int
	Quality    int
}

// NewItem returns an item with the given starting values. The engine never
// validates them; legendary items legitimately carry out-of-range values.
func NewItem(name string, daysToSell, quality int) *Item {
	return &Item{Name: name, DaysToSell: daysToSell, Quality: quality}
}

// PastDue reports whether the item's sell-by date has passed.
func (it *Item) PastDue() bool {
	return it.DaysToSell < 0
}
