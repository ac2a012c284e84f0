package character

import (
	"github.com/ninthworld/chargen/internal/domain/catalog"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

// LineItem is a single purchase recorded in the ledger
type LineItem struct {
	Name     string           `toml:"name"`
	Category catalog.Category `toml:"category"`
	Cost     int              `toml:"cost"`
}

// Ledger tracks equipment spending against a shin cap during the shop
// step. Purchases form a stack so undo is strictly last-in-first-out.
// Every mutation is atomic: a rejected Add leaves the ledger untouched.
type Ledger struct {
	cap       int
	total     int
	subtotals map[catalog.Category]int
	purchases []LineItem
}

// NewLedger creates a ledger with the given shin cap
func NewLedger(cap int) *Ledger {
	return &Ledger{
		cap:       cap,
		subtotals: make(map[catalog.Category]int),
	}
}

// Add records a purchase. It fails with an over budget error, leaving
// all state unchanged, when the item would push the total past the cap.
func (l *Ledger) Add(item LineItem) error {
	if item.Cost < 0 {
		return cherr.InvalidArgumentf("item %q has negative cost %d", item.Name, item.Cost)
	}

	if l.total+item.Cost > l.cap {
		return cherr.OverBudgetf("%q costs %d shins but only %d remain", item.Name, item.Cost, l.Remaining()).
			WithMeta("item", item.Name).
			WithMeta("cost", item.Cost).
			WithMeta("remaining", l.Remaining())
	}

	l.purchases = append(l.purchases, item)
	l.total += item.Cost
	l.subtotals[item.Category] += item.Cost
	return nil
}

// RemoveLast undoes the most recent purchase and returns it. Undo is
// stack-discipline only; arbitrary removal is not supported.
func (l *Ledger) RemoveLast() (LineItem, error) {
	if len(l.purchases) == 0 {
		return LineItem{}, cherr.EmptyLedger("no purchases to remove")
	}

	last := l.purchases[len(l.purchases)-1]
	l.purchases = l.purchases[:len(l.purchases)-1]
	l.total -= last.Cost
	l.subtotals[last.Category] -= last.Cost
	return last, nil
}

// Cap returns the shin cap
func (l *Ledger) Cap() int {
	return l.cap
}

// Total returns the running spend
func (l *Ledger) Total() int {
	return l.total
}

// Remaining returns cap minus total; Add's rejection rule keeps this >= 0
func (l *Ledger) Remaining() int {
	return l.cap - l.total
}

// Subtotal returns the spend within one category
func (l *Ledger) Subtotal(category catalog.Category) int {
	return l.subtotals[category]
}

// Purchases returns a copy of the purchase stack in order
func (l *Ledger) Purchases() []LineItem {
	out := make([]LineItem, len(l.purchases))
	copy(out, l.purchases)
	return out
}
