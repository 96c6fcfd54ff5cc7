package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

// TestReduce_MinimumWins verifies the cheapest price is kept when
// several observations map to the same canonical size.
func TestReduce_MinimumWins(t *testing.T) {
	table := Reduce([]Observation{
		{Site: "montgomery", Width: 10, Depth: 10, Price: dec("89")},
		{Site: "montgomery", Width: 10, Depth: 10, Price: dec("79")},
		{Site: "montgomery", Width: 10, Depth: 10, Price: dec("99.99")},
	})

	require.NotNil(t, table[Size10x10])
	assert.Equal(t, 79, *table[Size10x10])
}

// TestReduce_ManyToOne verifies near-equivalent raw sizes collapse onto
// one canonical size before the minimum is taken.
func TestReduce_ManyToOne(t *testing.T) {
	table := Reduce([]Observation{
		{Site: "publicstorage", Width: 5, Depth: 14, Price: dec("48")},
		{Site: "publicstorage", Width: 5, Depth: 8, Price: dec("41.0")},
		{Site: "publicstorage", Width: 5, Depth: 15, Price: dec("52")},
	})

	require.NotNil(t, table[Size5x10])
	assert.Equal(t, 41, *table[Size5x10])
}

// TestReduce_Rounding verifies prices round to the nearest whole dollar.
func TestReduce_Rounding(t *testing.T) {
	table := Reduce([]Observation{
		{Site: "montgomery", Width: 5, Depth: 10, Price: dec("54.49")},
		{Site: "montgomery", Width: 10, Depth: 15, Price: dec("88.50")},
	})

	require.NotNil(t, table[Size5x10])
	assert.Equal(t, 54, *table[Size5x10])
	require.NotNil(t, table[Size10x15])
	assert.Equal(t, 89, *table[Size10x15])
}

// TestReduce_DiscardsUnmappable verifies observations outside the
// site's dimension table are dropped without affecting the rest.
func TestReduce_DiscardsUnmappable(t *testing.T) {
	table := Reduce([]Observation{
		{Site: "lockaway", Width: 8, Depth: 4, Price: dec("29")},
		{Site: "lockaway", Width: 8, Depth: 8, Price: dec("45")},
	})

	assert.Nil(t, table[Size10x10])
	require.NotNil(t, table[Size5x10])
	assert.Equal(t, 45, *table[Size5x10])
}

// TestReduce_Empty verifies zero observations produce an all-absent
// table with all five keys present.
func TestReduce_Empty(t *testing.T) {
	table := Reduce(nil)

	assert.Len(t, table, 5)
	for _, size := range Sizes {
		price, ok := table[size]
		assert.True(t, ok, "%s key should exist", size)
		assert.Nil(t, price)
	}
	assert.Equal(t, 0, table.Known())
}

// TestReduce_ZeroPriceIsPresent verifies a zero price is a real value,
// not the same as absent.
func TestReduce_ZeroPriceIsPresent(t *testing.T) {
	table := Reduce([]Observation{
		{Site: "montgomery", Width: 5, Depth: 10, Price: dec("0")},
	})

	require.NotNil(t, table[Size5x10])
	assert.Equal(t, 0, *table[Size5x10])
	assert.Equal(t, 1, table.Known())
}

// TestParsePrice verifies raw price token parsing.
func TestParsePrice(t *testing.T) {
	price, ok := ParsePrice("41.0")
	assert.True(t, ok)
	assert.True(t, price.Equal(dec("41")))

	_, ok = ParsePrice("not-a-price")
	assert.False(t, ok)
}

// TestTableClone verifies clones do not share price pointers.
func TestTableClone(t *testing.T) {
	price := 59
	table := NewTable()
	table[Size5x10] = &price

	clone := table.Clone()
	*clone[Size5x10] = 99

	assert.Equal(t, 59, *table[Size5x10])
	assert.Equal(t, 99, *clone[Size5x10])
}

// TestTableComplete verifies partial tables are filled back to the five
// canonical keys.
func TestTableComplete(t *testing.T) {
	price := 120
	partial := Table{Size10x20: &price}

	complete := partial.Complete()

	assert.Len(t, complete, 5)
	require.NotNil(t, complete[Size10x20])
	assert.Equal(t, 120, *complete[Size10x20])
	assert.Nil(t, complete[Size5x10])

	assert.Len(t, Table(nil).Complete(), 5)
}
