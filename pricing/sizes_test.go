package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize_PublicStorage verifies every documented Public Storage
// dimension mapping.
func TestNormalize_PublicStorage(t *testing.T) {
	tests := []struct {
		width, depth int
		want         Size
	}{
		{5, 5, Size5x10},
		{5, 6, Size5x10},
		{5, 8, Size5x10},
		{5, 10, Size5x10},
		{5, 14, Size5x10},
		{5, 15, Size5x10},
		{7, 14, Size10x10},
		{10, 10, Size10x10},
		{10, 14, Size10x10},
		{10, 15, Size10x15},
		{10, 17, Size10x15},
		{10, 19, Size10x20},
		{10, 20, Size10x20},
		{10, 30, Size10x30},
		{10, 40, Size10x30},
		{12, 28, Size10x30},
	}

	for _, tt := range tests {
		got, ok := Normalize("publicstorage", tt.width, tt.depth)
		assert.True(t, ok, "%dx%d should normalize", tt.width, tt.depth)
		assert.Equal(t, tt.want, got, "%dx%d", tt.width, tt.depth)
	}
}

// TestNormalize_PublicStorageUnknown verifies pairs absent from the
// Public Storage table are discarded, including canonical-looking pairs
// the site never publishes.
func TestNormalize_PublicStorageUnknown(t *testing.T) {
	for _, dims := range []Dimensions{{8, 8}, {12, 10}, {20, 20}, {0, 0}} {
		_, ok := Normalize("publicstorage", dims.Width, dims.Depth)
		assert.False(t, ok, "%dx%d should be discarded", dims.Width, dims.Depth)
	}
}

// TestNormalize_Lockaway verifies the canonical pass-through plus the
// Lockaway-specific equivalents.
func TestNormalize_Lockaway(t *testing.T) {
	tests := []struct {
		width, depth int
		want         Size
	}{
		{5, 10, Size5x10},
		{10, 10, Size10x10},
		{10, 15, Size10x15},
		{10, 20, Size10x20},
		{10, 30, Size10x30},
		{8, 8, Size5x10},
		{8, 12, Size10x10},
	}

	for _, tt := range tests {
		got, ok := Normalize("lockaway", tt.width, tt.depth)
		assert.True(t, ok, "%dx%d should normalize", tt.width, tt.depth)
		assert.Equal(t, tt.want, got, "%dx%d", tt.width, tt.depth)
	}

	// 8x4 is a real Lockaway size but not one we track.
	_, ok := Normalize("lockaway", 8, 4)
	assert.False(t, ok)
}

// TestNormalize_Woodlands verifies the Woodlands oversize equivalents.
func TestNormalize_Woodlands(t *testing.T) {
	got, ok := Normalize("woodlands", 12, 10)
	assert.True(t, ok)
	assert.Equal(t, Size10x10, got)

	got, ok = Normalize("woodlands", 12, 30)
	assert.True(t, ok)
	assert.Equal(t, Size10x30, got)

	got, ok = Normalize("woodlands", 10, 20)
	assert.True(t, ok)
	assert.Equal(t, Size10x20, got)

	_, ok = Normalize("woodlands", 12, 12)
	assert.False(t, ok)
}

// TestNormalize_CanonicalOnlySites verifies sites with no table of
// their own accept exactly the canonical pairs.
func TestNormalize_CanonicalOnlySites(t *testing.T) {
	canonical := map[Dimensions]Size{
		{5, 10}:  Size5x10,
		{10, 10}: Size10x10,
		{10, 15}: Size10x15,
		{10, 20}: Size10x20,
		{10, 30}: Size10x30,
	}

	for _, site := range []string{"honeaegypt", "montgomery"} {
		for dims, want := range canonical {
			got, ok := Normalize(site, dims.Width, dims.Depth)
			assert.True(t, ok, "%s %dx%d", site, dims.Width, dims.Depth)
			assert.Equal(t, want, got)
		}

		_, ok := Normalize(site, 9, 9)
		assert.False(t, ok)
	}
}
