// Package config loads the competitor roster the scanner works from.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Competitor is one entry in the configured roster. URL and Strategy
// are both optional; if either is absent the competitor is never
// scraped and its prior pricing carries forward untouched.
type Competitor struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url,omitempty"`
	Strategy string `yaml:"strategy,omitempty"`
	// ScanOrder overrides which co-occurrence ordering a text-scan
	// strategy tries first ("dimension-first" or "price-first").
	ScanOrder string `yaml:"scan_order,omitempty"`
}

// Skip reports whether extraction should not be attempted for this
// competitor.
func (c Competitor) Skip() bool {
	return c.URL == "" || c.Strategy == ""
}

// File is the structure of the competitors YAML file.
type File struct {
	Competitors []Competitor `yaml:"competitors"`
}

// Load reads a competitor roster from the given YAML file. When the
// file does not exist the built-in default roster is returned; that is
// not an error. A file that exists but cannot be parsed is an error.
func Load(path string) ([]Competitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(file.Competitors) == 0 {
		return nil, fmt.Errorf("config file %s lists no competitors", path)
	}
	return file.Competitors, nil
}

// Default returns the built-in roster of competitors around the
// facility. Entries without a URL publish no unit pricing online.
func Default() []Competitor {
	return []Competitor{
		{
			Name:     "Lockaway Storage",
			URL:      "https://www.lockaway-storage.com/storage-units/texas/magnolia/lockaway-storage-1488-411002/",
			Strategy: "lockaway",
		},
		{
			Name:     "Public Storage (FM 1488)",
			URL:      "https://www.publicstorage.com/self-storage-tx-magnolia/2360.html",
			Strategy: "public-storage",
		},
		{
			Name:     "Public Storage (FM 2978)",
			URL:      "https://www.publicstorage.com/self-storage-tx-the-woodlands/5888.html",
			Strategy: "public-storage",
		},
		{
			// No prices published online.
			Name: "SmartStop Self Storage",
		},
		{
			Name:     "Honea Egypt Self Storage",
			URL:      "https://www.honeaegyptselfstorage.com/find-storage.aspx?id=68",
			Strategy: "honea-egypt",
		},
		{
			Name:     "Montgomery Self Storage",
			URL:      "https://montgomeryss.com/locations/magnolia-tx/",
			Strategy: "montgomery",
		},
		{
			Name:     "Woodlands Storage & Office",
			URL:      "https://www.woodlandssao.com/units",
			Strategy: "woodlands",
		},
		{
			// RV/boat parking only, no enclosed unit pricing.
			Name: "Storage King USA",
		},
	}
}
