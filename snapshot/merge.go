package snapshot

import (
	"fmt"
	"time"

	"github.com/MattClauder/magnolia-storage-scanner/pricing"
)

// Status says what happened to one competitor during a run.
type Status int

const (
	// StatusSkipped means no extraction was attempted: the competitor
	// has no source URL or no strategy configured.
	StatusSkipped Status = iota
	// StatusFailed means extraction was attempted but could not run to
	// completion (fetch failure, timeout, unknown strategy).
	StatusFailed
	// StatusScraped means extraction ran, even if it found nothing.
	StatusScraped
)

// Outcome is one competitor's result for a run. Pricing is only
// consulted when Status is StatusScraped.
type Outcome struct {
	Status  Status
	Pricing pricing.Table
}

// Change records one per-size price difference between runs.
type Change struct {
	Competitor string
	Size       pricing.Size
	Old        *int
	New        *int
}

// String renders a change as "Lockaway Storage 5x10: 59 → 55"; unknown
// prices render as "null".
func (c Change) String() string {
	return fmt.Sprintf("%s %s: %s → %s",
		c.Competitor, c.Size, pricing.FormatPrice(c.Old), pricing.FormatPrice(c.New))
}

// Merge combines a run's outcomes with the previous snapshot and
// returns the updated snapshot plus the changes detected, in competitor
// list order.
//
// Skipped and failed competitors carry their previous table forward
// unchanged and never produce change entries; stale data persisting
// until a future run succeeds is the intended behavior. Scraped
// competitors have their table replaced, and every size whose value
// differs -- including null↔present transitions -- becomes a change
// entry. All metadata other than pricing is preserved verbatim from the
// previous snapshot; competitors not previously present are added fresh.
func Merge(prev *Snapshot, names []string, outcomes map[string]Outcome, now time.Time) (*Snapshot, []Change) {
	stamp := Stamp(now)
	merged := &Snapshot{
		LastUpdated: &stamp,
		Competitors: make([]Competitor, 0, len(names)),
	}

	var changes []Change
	for _, name := range names {
		previous := prev.Find(name)

		prevTable := pricing.NewTable()
		if previous != nil {
			prevTable = previous.Pricing.Complete()
		}

		newTable := prevTable
		outcome, ok := outcomes[name]
		if ok && outcome.Status == StatusScraped {
			newTable = outcome.Pricing.Complete()
			changes = append(changes, diff(name, prevTable, newTable)...)
		}

		competitor := Competitor{Name: name, Pricing: newTable.Clone()}
		if previous != nil {
			competitor.Extra = previous.Extra
		}
		merged.Competitors = append(merged.Competitors, competitor)
	}

	return merged, changes
}

// diff compares two tables size by size in canonical order.
func diff(name string, prev, next pricing.Table) []Change {
	var changes []Change
	for _, size := range pricing.Sizes {
		oldPrice, newPrice := prev[size], next[size]
		if equalPrice(oldPrice, newPrice) {
			continue
		}
		changes = append(changes, Change{
			Competitor: name,
			Size:       size,
			Old:        oldPrice,
			New:        newPrice,
		})
	}
	return changes
}

func equalPrice(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
