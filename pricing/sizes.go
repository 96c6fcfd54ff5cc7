package pricing

// Size is one of the five standardized storage-unit dimensions the
// business tracks. The set is closed: extraction results outside it are
// either mapped onto it by a site's dimension table or discarded.
type Size string

const (
	Size5x10  Size = "5x10"
	Size10x10 Size = "10x10"
	Size10x15 Size = "10x15"
	Size10x20 Size = "10x20"
	Size10x30 Size = "10x30"
)

// Sizes lists every canonical size in display order.
var Sizes = []Size{Size5x10, Size10x10, Size10x15, Size10x20, Size10x30}

// Dimensions is a raw width × depth pair as a site reports it.
type Dimensions struct {
	Width int
	Depth int
}

// canonicalDims maps each canonical size to its own raw pair, so sites
// that publish standard dimensions normalize without a site-specific
// entry.
var canonicalDims = map[Dimensions]Size{
	{5, 10}:  Size5x10,
	{10, 10}: Size10x10,
	{10, 15}: Size10x15,
	{10, 20}: Size10x20,
	{10, 30}: Size10x30,
}

// siteDims holds per-site dimension tables for sites whose published
// unit sizes do not line up with the canonical five. Mappings are
// many-to-one: several near-equivalent raw sizes collapse onto one
// canonical size.
var siteDims = map[string]map[Dimensions]Size{
	// Public Storage publishes non-standard sizes; closest equivalents.
	"publicstorage": {
		{5, 5}: Size5x10, {5, 6}: Size5x10, {5, 8}: Size5x10,
		{5, 10}: Size5x10, {5, 14}: Size5x10, {5, 15}: Size5x10,
		{7, 14}: Size10x10, {10, 10}: Size10x10, {10, 14}: Size10x10,
		{10, 15}: Size10x15, {10, 17}: Size10x15,
		{10, 19}: Size10x20, {10, 20}: Size10x20,
		{10, 30}: Size10x30, {10, 40}: Size10x30, {12, 28}: Size10x30,
	},
	"lockaway": {
		{8, 8}: Size5x10, {8, 12}: Size10x10,
	},
	"woodlands": {
		{12, 10}: Size10x10, {12, 30}: Size10x30,
	},
}

// replacesCanonical marks sites whose table replaces the canonical pairs
// entirely rather than extending them. Public Storage is the one such
// site: its standard-looking pairs are enumerated in its own table.
var replacesCanonical = map[string]bool{
	"publicstorage": true,
}

// Normalize maps a raw (width, depth) pair reported by the given site to
// a canonical size. The second return is false when the pair is not a
// size we track; that is a normal discard, not an error.
func Normalize(site string, width, depth int) (Size, bool) {
	dims := Dimensions{Width: width, Depth: depth}

	if table, ok := siteDims[site]; ok {
		if size, ok := table[dims]; ok {
			return size, true
		}
		if replacesCanonical[site] {
			return "", false
		}
	}

	size, ok := canonicalDims[dims]
	return size, ok
}
