// Package extract locates per-unit storage prices in raw page markup.
//
// Extraction treats a page as unstructured text and looks for a
// dimension-like token ("10 x 15", tolerant of foot markers and
// HTML-entity apostrophes) co-occurring with a price-like token
// ("$89" or "$89.99") within a bounded span. Decorative markup drifts
// far more than the text content does, so textual co-occurrence
// survives redesigns that break structural parsing.
package extract

import "github.com/MattClauder/magnolia-storage-scanner/pricing"

// Extractor scans raw page text for dimension/price co-occurrences on
// behalf of one competitor site. Implementations carry the structural
// assumptions of that site's markup; new sites are added as new
// variants, not new conditional branches.
type Extractor interface {
	// Site returns the identity used to normalize raw dimensions.
	Site() string

	// Extract scans the page and returns every observation found. An
	// empty result is a normal "no data" outcome, not a failure: each
	// variant tries at least one relaxed fallback pattern before giving
	// up.
	Extract(page string) []pricing.Observation
}

// strategies maps configuration selectors to extractor constructors.
var strategies = map[string]func(order ScanOrder) Extractor{
	"public-storage": func(ScanOrder) Extractor { return NewPublicStorage() },
	"lockaway":       func(order ScanOrder) Extractor { return NewTextScan("lockaway", order) },
	"honea-egypt":    func(order ScanOrder) Extractor { return NewTextScan("honeaegypt", order) },
	"montgomery":     func(order ScanOrder) Extractor { return NewTextScan("montgomery", order) },
	"woodlands":      func(order ScanOrder) Extractor { return NewTextScan("woodlands", order) },
}

// New returns the extractor for a configured strategy selector. The
// order argument picks which co-occurrence pattern a text-scan variant
// tries first; pass the zero value for the default. The second return
// is false for unknown selectors.
func New(strategy string, order ScanOrder) (Extractor, bool) {
	construct, ok := strategies[strategy]
	if !ok {
		return nil, false
	}
	return construct(order), true
}

// Strategies lists every known strategy selector.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	return names
}
