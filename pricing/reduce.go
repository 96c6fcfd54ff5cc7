package pricing

import "github.com/shopspring/decimal"

// Observation is one raw (dimension, price) match found in a page scan.
// Observations are ephemeral: produced by an extractor and consumed by
// Reduce within a single run.
type Observation struct {
	Site  string // site identity, selects the dimension table
	Width int
	Depth int
	Price decimal.Decimal
}

// ParsePrice converts a raw price token (the digits after the currency
// symbol, e.g. "41.0" or "59.99") into a decimal. The second return is
// false when the token is not a number.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// Reduce collapses a scan's observations into a pricing table.
// Observations that fail to normalize are discarded. When several
// observations map to the same canonical size -- duplicate listings,
// tiers, promotions -- the minimum price wins: pages often list a range
// or multiple units of the same size, and the lowest published price is
// the meaningful "starting at" figure. Selected prices are rounded to
// the nearest whole dollar. Sizes with no surviving observations stay
// nil, which is not the same as a price of zero.
func Reduce(observations []Observation) Table {
	lowest := map[Size]decimal.Decimal{}
	for _, obs := range observations {
		size, ok := Normalize(obs.Site, obs.Width, obs.Depth)
		if !ok {
			continue
		}
		if current, ok := lowest[size]; !ok || obs.Price.LessThan(current) {
			lowest[size] = obs.Price
		}
	}

	table := NewTable()
	for size, price := range lowest {
		rounded := int(price.Round(0).IntPart())
		table[size] = &rounded
	}
	return table
}
