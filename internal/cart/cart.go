// Package cart models the diner's in-browser order. A cart is an
// explicit value object owned by one page session — nothing here is
// shared or persisted, and the server never sees it. Entries capture
// the item's name and price string at add time so the cart stays
// coherent if the menu changes underneath it.
package cart

import (
	"fmt"

	"github.com/RiniPat/aaDinehub/internal/menu"
)

// Entry is one line of the cart. Quantity is always >= 1; an entry
// that would drop to zero is removed instead.
type Entry struct {
	ItemID   int
	Name     string
	Price    string
	Quantity int
}

type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart with quantity 1, or bumps the quantity
// if it is already there.
func (c *Cart) Add(itemID int, name, price string) {
	for i := range c.entries {
		if c.entries[i].ItemID == itemID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, Entry{
		ItemID:   itemID,
		Name:     name,
		Price:    price,
		Quantity: 1,
	})
}

// ChangeQuantity applies a delta to an entry. Reaching zero or below
// removes the entry entirely. Unknown ids are ignored.
func (c *Cart) ChangeQuantity(itemID, delta int) {
	for i := range c.entries {
		if c.entries[i].ItemID != itemID {
			continue
		}
		c.entries[i].Quantity += delta
		if c.entries[i].Quantity <= 0 {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		}
		return
	}
}

// Entries returns the cart lines in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count is the total number of units across all entries.
func (c *Cart) Count() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// Total sums parsed price × quantity over the cart. The price parse is
// lossy by design (currency symbols are stripped; garbage counts as
// zero), so the total depends only on final quantities, not on the
// order items were added.
func (c *Cart) Total() float64 {
	var sum float64
	for _, e := range c.entries {
		sum += menu.ParsePrice(e.Price) * float64(e.Quantity)
	}
	return sum
}

// FormatTotal renders a total fixed to two decimal places.
func FormatTotal(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}
