package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MattClauder/magnolia-storage-scanner/pricing"
	"github.com/MattClauder/magnolia-storage-scanner/snapshot"
)

func handleShow(dataPath string, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Print the raw snapshot JSON")
	fs.Parse(args)

	store := snapshot.NewStore(dataPath)
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load snapshot: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printSnapshotJSON(snap)
		return
	}
	printSnapshotTable(snap)
}

// printSnapshotTable prints the snapshot in human-readable table format.
func printSnapshotTable(snap *snapshot.Snapshot) {
	updated := "never"
	if snap.LastUpdated != nil {
		updated = *snap.LastUpdated
	}
	fmt.Printf("Last updated: %s\n\n", updated)

	if len(snap.Competitors) == 0 {
		fmt.Println("No competitors on record.")
		return
	}

	// Header
	fmt.Printf("%-30s", "COMPETITOR")
	for _, size := range pricing.Sizes {
		fmt.Printf(" %8s", size)
	}
	fmt.Println()

	for _, competitor := range snap.Competitors {
		name := competitor.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("%-30s", name)
		for _, size := range pricing.Sizes {
			price := competitor.Pricing.Complete()[size]
			if price == nil {
				fmt.Printf(" %8s", "-")
			} else {
				fmt.Printf(" %8s", fmt.Sprintf("$%d", *price))
			}
		}
		fmt.Println()
	}
}

// printSnapshotJSON prints the snapshot in JSON format.
func printSnapshotJSON(snap *snapshot.Snapshot) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
