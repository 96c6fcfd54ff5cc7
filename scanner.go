// Package scanner runs the nightly competitor pricing scan: fetch each
// configured competitor's pricing page, extract per-size prices, and
// merge the results into the persisted snapshot.
package scanner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MattClauder/magnolia-storage-scanner/config"
	"github.com/MattClauder/magnolia-storage-scanner/extract"
	"github.com/MattClauder/magnolia-storage-scanner/fetch"
	"github.com/MattClauder/magnolia-storage-scanner/pricing"
	"github.com/MattClauder/magnolia-storage-scanner/snapshot"
)

// PageFetcher retrieves a competitor's pricing page. Satisfied by
// *fetch.Client; tests substitute a stub.
type PageFetcher interface {
	Page(ctx context.Context, url string) (*fetch.Page, error)
}

// Runner executes one scan over a competitor roster. Competitors are
// processed strictly in roster order, one at a time, with a single
// fetch attempt each; a failure for one competitor never affects the
// rest of the run.
type Runner struct {
	fetcher PageFetcher
	out     io.Writer
}

// NewRunner creates a runner that writes progress lines to out.
func NewRunner(fetcher PageFetcher, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{fetcher: fetcher, out: out}
}

// Report summarizes one completed scan.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Snapshot  *snapshot.Snapshot
	Changes   []snapshot.Change
	Scraped   int
	Skipped   int
	Failed    int
}

// Run scans every competitor in the roster and merges the results into
// the previous snapshot. The returned report carries the merged
// snapshot; nothing is persisted here, so a run killed mid-way leaves
// the store untouched.
func (r *Runner) Run(ctx context.Context, prev *snapshot.Snapshot, roster []config.Competitor) *Report {
	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}

	names := make([]string, 0, len(roster))
	outcomes := make(map[string]snapshot.Outcome, len(roster))
	for _, competitor := range roster {
		names = append(names, competitor.Name)
		outcome := r.scan(ctx, competitor)
		outcomes[competitor.Name] = outcome

		switch outcome.Status {
		case snapshot.StatusSkipped:
			report.Skipped++
		case snapshot.StatusFailed:
			report.Failed++
		case snapshot.StatusScraped:
			report.Scraped++
		}
	}

	report.Snapshot, report.Changes = snapshot.Merge(prev, names, outcomes, report.StartedAt)
	return report
}

// scan produces one competitor's outcome. Every failure path degrades
// to carrying the prior data forward; none of them ends the run.
func (r *Runner) scan(ctx context.Context, competitor config.Competitor) snapshot.Outcome {
	if competitor.Skip() {
		fmt.Fprintf(r.out, "⏭ Skipping %s (no online pricing)\n", competitor.Name)
		return snapshot.Outcome{Status: snapshot.StatusSkipped}
	}

	fmt.Fprintf(r.out, "🔍 Scraping %s...\n", competitor.Name)

	extractor, ok := extract.New(competitor.Strategy, extract.ScanOrder(competitor.ScanOrder))
	if !ok {
		fmt.Fprintf(r.out, "  ⚠ Unknown strategy %q, keeping old data\n", competitor.Strategy)
		return snapshot.Outcome{Status: snapshot.StatusFailed}
	}

	page, err := r.fetcher.Page(ctx, competitor.URL)
	if err != nil {
		fmt.Fprintf(r.out, "  ⚠ %v, keeping old data\n", err)
		return snapshot.Outcome{Status: snapshot.StatusFailed}
	}
	if page.Title != "" {
		fmt.Fprintf(r.out, "  page: %s\n", page.Title)
	}

	table := pricing.Reduce(extractor.Extract(page.Body))
	fmt.Fprintf(r.out, "  ✓ %s: %d prices found\n", competitor.Name, table.Known())

	return snapshot.Outcome{Status: snapshot.StatusScraped, Pricing: table}
}
