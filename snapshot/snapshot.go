// Package snapshot persists the competitor pricing record and merges
// each run's results into it.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MattClauder/magnolia-storage-scanner/pricing"
)

// TimeLayout is the format of the snapshot's lastUpdated field. The
// trailing "UTC" is a literal; timestamps are always rendered from UTC
// times.
const TimeLayout = "2006-01-02 15:04 UTC"

// Competitor is one business in the snapshot: its name, its pricing
// table, and any descriptive metadata (address, phone, notes) carried
// in the persisted record. Metadata is opaque to the scanner and is
// preserved verbatim across runs; only the pricing table is ever
// replaced.
type Competitor struct {
	Name    string
	Pricing pricing.Table
	// Extra holds every persisted field other than name and pricing,
	// keyed by field name with the raw bytes untouched.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON splits a competitor object into the fields the scanner
// understands and the raw remainder.
func (c *Competitor) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode competitor: %w", err)
	}

	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &c.Name); err != nil {
			return fmt.Errorf("failed to decode competitor name: %w", err)
		}
		delete(fields, "name")
	}

	c.Pricing = pricing.NewTable()
	if raw, ok := fields["pricing"]; ok {
		if err := json.Unmarshal(raw, &c.Pricing); err != nil {
			return fmt.Errorf("failed to decode competitor pricing: %w", err)
		}
		delete(fields, "pricing")
	}

	if len(fields) > 0 {
		c.Extra = fields
	}
	return nil
}

// MarshalJSON recombines the competitor's known fields with its
// preserved metadata.
func (c Competitor) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+2)
	for key, raw := range c.Extra {
		fields[key] = raw
	}

	name, err := json.Marshal(c.Name)
	if err != nil {
		return nil, err
	}
	fields["name"] = name

	table, err := json.Marshal(c.Pricing.Complete())
	if err != nil {
		return nil, err
	}
	fields["pricing"] = table

	return json.Marshal(fields)
}

// Snapshot is the full persisted pricing record as of the last
// successful run. Competitor order follows the configured competitor
// list and is stable across runs.
type Snapshot struct {
	LastUpdated *string      `json:"lastUpdated"`
	Competitors []Competitor `json:"competitors"`
}

// Empty returns a snapshot with no prior data.
func Empty() *Snapshot {
	return &Snapshot{Competitors: []Competitor{}}
}

// Find returns the competitor with the given name, or nil.
func (s *Snapshot) Find(name string) *Competitor {
	for i := range s.Competitors {
		if s.Competitors[i].Name == name {
			return &s.Competitors[i]
		}
	}
	return nil
}

// Stamp formats a timestamp for the lastUpdated field.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
