package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	scanner "github.com/MattClauder/magnolia-storage-scanner"
	"github.com/MattClauder/magnolia-storage-scanner/config"
	"github.com/MattClauder/magnolia-storage-scanner/fetch"
	"github.com/MattClauder/magnolia-storage-scanner/snapshot"
)

func handleScan(dataPath, configPath string, args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	timeout := fs.Duration("timeout", fetch.DefaultTimeout, "Fetch timeout per competitor")
	dryRun := fs.Bool("dry-run", false, "Scrape and report without writing the snapshot")
	fs.Parse(args)

	roster, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load competitor roster: %v\n", err)
		os.Exit(1)
	}

	store := snapshot.NewStore(dataPath)
	prev, err := store.Load()
	if err != nil {
		// Corrupt or unreadable prior data is not fatal; the run simply
		// starts from an empty snapshot.
		fmt.Fprintf(os.Stderr, "Warning: %v (starting with no prior data)\n", err)
	}

	banner()
	fmt.Printf("Run time: %s\n", snapshot.Stamp(time.Now()))
	banner()
	fmt.Println()

	runner := scanner.NewRunner(fetch.NewClient(*timeout), os.Stdout)
	report := runner.Run(context.Background(), prev, roster)

	fmt.Println()
	banner()
	if len(report.Changes) > 0 {
		fmt.Printf("📊 %d price change(s) detected:\n", len(report.Changes))
		for _, change := range report.Changes {
			fmt.Printf("  %s\n", change)
		}
	} else {
		fmt.Println("✅ No price changes detected")
	}

	if *dryRun {
		fmt.Println("Dry run: snapshot not written")
	} else {
		if err := store.Save(report.Snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to save snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("💾 Saved to %s\n", store.Path())
	}
	fmt.Printf("Run %s: %d scraped, %d skipped, %d failed\n",
		report.RunID, report.Scraped, report.Skipped, report.Failed)
	banner()
}

func banner() {
	fmt.Println(strings.Repeat("=", 60))
}
