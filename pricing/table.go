package pricing

import (
	"encoding/json"
	"fmt"
)

// Table maps every canonical size to a monthly price in whole dollars,
// or nil where the price is unknown or unpublished. A nil price is a
// distinct state from zero. Tables always carry exactly the five
// canonical keys.
type Table map[Size]*int

// NewTable returns a table with all five canonical sizes present and no
// prices.
func NewTable() Table {
	t := make(Table, len(Sizes))
	for _, size := range Sizes {
		t[size] = nil
	}
	return t
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := NewTable()
	for size, price := range t {
		if price != nil {
			v := *price
			out[size] = &v
		}
	}
	return out
}

// Known returns the number of sizes with a published price.
func (t Table) Known() int {
	n := 0
	for _, size := range Sizes {
		if t[size] != nil {
			n++
		}
	}
	return n
}

// Complete fills in any missing canonical keys with nil prices. Used
// after unmarshalling persisted data so downstream code can rely on all
// five keys being present.
func (t Table) Complete() Table {
	if t == nil {
		return NewTable()
	}
	for _, size := range Sizes {
		if _, ok := t[size]; !ok {
			t[size] = nil
		}
	}
	return t
}

// UnmarshalJSON decodes a pricing object and restores the five-key
// invariant even when the stored object is partial.
func (t *Table) UnmarshalJSON(data []byte) error {
	raw := map[Size]*int{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode pricing table: %w", err)
	}
	*t = Table(raw).Complete()
	return nil
}

// FormatPrice renders a price for change reports: "59", or "null" when
// the price is unknown.
func FormatPrice(price *int) string {
	if price == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *price)
}
