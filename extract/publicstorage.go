package extract

import (
	"log"
	"regexp"

	"github.com/MattClauder/magnolia-storage-scanner/pricing"
)

// Public Storage embeds prices in data attributes rather than text:
// data-pricebook-price="41.0" on the unit's price element, with the
// dimension text in a nearby element. Because the dimension and the
// price live in separate fragments, pairing them takes three pattern
// attempts, tried in fixed priority from most to least structurally
// specific.
var (
	// Dimension text followed by a pricebook attribute, no intervening
	// price token.
	psDimThenAttr = regexp.MustCompile(
		`(?is)(\d+)(?:'|&#39;|&#x27;)?\s*x\s*(\d+)(?:'|&#39;|&#x27;)?[^$]{0,600}?data-pricebook-price="([\d.]+)"`)
	// Pricebook attribute whose element leads into the dimension text.
	psAttrThenDim = regexp.MustCompile(
		`(?is)data-pricebook-price="([\d.]+)"[^>]*>.{0,600}?(\d+)(?:'|&#39;|&#x27;)?\s*x\s*(\d+)`)
	// Broadest sweep: every pricebook attribute and every dimension on
	// the page, counted separately. These cannot be paired reliably, so
	// this attempt only feeds diagnostics.
	psAttrOnly = regexp.MustCompile(`data-pricebook-price="([\d.]+)"`)
	psDimOnly  = regexp.MustCompile(`(?i)(\d+)(?:'|&#39;|&#x27;|ft)?\s*x\s*(\d+)`)
)

// PublicStorage extracts prices from Public Storage facility pages,
// which share one markup convention across the chain's locations.
type PublicStorage struct{}

// NewPublicStorage creates the Public Storage extractor.
func NewPublicStorage() *PublicStorage { return &PublicStorage{} }

// Site returns the site identity used for dimension normalization.
func (p *PublicStorage) Site() string { return "publicstorage" }

// Extract runs the three pattern attempts in priority order. When only
// the broadest sweep matches, the prices and dimensions cannot be
// paired, so the counts are logged and no observations are returned.
func (p *PublicStorage) Extract(page string) []pricing.Observation {
	var observations []pricing.Observation

	for _, match := range psDimThenAttr.FindAllStringSubmatch(page, -1) {
		if obs, ok := makeObservation(p.Site(), match[1], match[2], match[3]); ok {
			observations = append(observations, obs)
		}
	}
	if len(observations) > 0 {
		return observations
	}

	for _, match := range psAttrThenDim.FindAllStringSubmatch(page, -1) {
		if obs, ok := makeObservation(p.Site(), match[2], match[3], match[1]); ok {
			observations = append(observations, obs)
		}
	}
	if len(observations) > 0 {
		return observations
	}

	prices := psAttrOnly.FindAllStringSubmatch(page, -1)
	dims := psDimOnly.FindAllStringSubmatch(page, -1)
	if len(prices) > 0 || len(dims) > 0 {
		log.Printf("public-storage: found %d prices, %d dimensions (no paired matches)", len(prices), len(dims))
	}
	return nil
}
