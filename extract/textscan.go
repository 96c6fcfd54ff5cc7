package extract

import (
	"regexp"
	"strconv"

	"github.com/MattClauder/magnolia-storage-scanner/pricing"
)

// ScanOrder selects which token ordering a TextScan tries first. Most
// sites print the unit size and then the price, but a few themes put
// the price tag ahead of the dimension text; the preferred ordering is
// configuration, and the other ordering is always tried as a fallback.
type ScanOrder string

const (
	// DimensionFirst matches "5' x 10' ... $59". The default.
	DimensionFirst ScanOrder = "dimension-first"
	// PriceFirst matches "$59 ... 5' x 10'".
	PriceFirst ScanOrder = "price-first"
)

// Dimension and price token fragments shared by the scan patterns. A
// dimension tolerates trailing foot markers as a raw apostrophe, the
// HTML entities &#39; and &#x27;, or "ft". A price is a dollar sign
// followed by an integer with an optional two-digit cents part.
const (
	dimPattern   = `(\d+)(?:'|&#39;|&#x27;|ft)?\s*x\s*(\d+)(?:'|&#39;|&#x27;|ft)?`
	pricePattern = `\$(\d+(?:\.\d{2})?)`
)

var (
	// Dimension text, then a price within a bounded span that crosses no
	// other price token.
	dimThenPrice = regexp.MustCompile(`(?is)` + dimPattern + `[^$]{0,400}?` + pricePattern)
	// Price, then dimension text within a bounded digit-free span.
	priceThenDim = regexp.MustCompile(`(?is)` + pricePattern + `\D{0,400}?` + dimPattern)
)

// TextScan extracts prices from sites that publish both the unit size
// and the price as free text. The site field selects the dimension
// table used during normalization.
type TextScan struct {
	site  string
	order ScanOrder
}

// NewTextScan creates a text-scan extractor for the given site. An
// empty order means DimensionFirst.
func NewTextScan(site string, order ScanOrder) *TextScan {
	if order == "" {
		order = DimensionFirst
	}
	return &TextScan{site: site, order: order}
}

// Site returns the site identity used for dimension normalization.
func (t *TextScan) Site() string { return t.site }

// Extract tries the configured ordering first and falls back to the
// opposite ordering when the primary pattern yields zero matches. An
// empty result after both attempts means the page published nothing we
// recognize.
func (t *TextScan) Extract(page string) []pricing.Observation {
	primary, fallback := t.scanDimFirst, t.scanPriceFirst
	if t.order == PriceFirst {
		primary, fallback = t.scanPriceFirst, t.scanDimFirst
	}

	if observations := primary(page); len(observations) > 0 {
		return observations
	}
	return fallback(page)
}

func (t *TextScan) scanDimFirst(page string) []pricing.Observation {
	var observations []pricing.Observation
	for _, match := range dimThenPrice.FindAllStringSubmatch(page, -1) {
		if obs, ok := t.observation(match[1], match[2], match[3]); ok {
			observations = append(observations, obs)
		}
	}
	return observations
}

func (t *TextScan) scanPriceFirst(page string) []pricing.Observation {
	var observations []pricing.Observation
	for _, match := range priceThenDim.FindAllStringSubmatch(page, -1) {
		if obs, ok := t.observation(match[2], match[3], match[1]); ok {
			observations = append(observations, obs)
		}
	}
	return observations
}

func (t *TextScan) observation(rawWidth, rawDepth, rawPrice string) (pricing.Observation, bool) {
	return makeObservation(t.site, rawWidth, rawDepth, rawPrice)
}

// makeObservation converts raw regex captures into an observation,
// rejecting captures that fail numeric parsing.
func makeObservation(site, rawWidth, rawDepth, rawPrice string) (pricing.Observation, bool) {
	width, err := strconv.Atoi(rawWidth)
	if err != nil {
		return pricing.Observation{}, false
	}
	depth, err := strconv.Atoi(rawDepth)
	if err != nil {
		return pricing.Observation{}, false
	}
	price, ok := pricing.ParsePrice(rawPrice)
	if !ok {
		return pricing.Observation{}, false
	}
	return pricing.Observation{
		Site:  site,
		Width: width,
		Depth: depth,
		Price: price,
	}, true
}
