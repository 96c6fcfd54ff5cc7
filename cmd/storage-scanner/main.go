package main

import (
	"fmt"
	"os"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	dataPath := getEnv("SCANNER_DATA_PATH", "data.json")
	configPath := getEnv("SCANNER_CONFIG_PATH", "competitors.yaml")

	subcommand := os.Args[1]

	switch subcommand {
	case "scan":
		handleScan(dataPath, configPath, os.Args[2:])
	case "show":
		handleShow(dataPath, os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("storage-scanner - Competitor storage pricing scanner")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  storage-scanner <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan       Scrape all competitors and update the snapshot")
	fmt.Println("  show       Print the stored snapshot")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SCANNER_DATA_PATH    Path to the snapshot file (default: data.json)")
	fmt.Println("  SCANNER_CONFIG_PATH  Path to the competitor roster (default: competitors.yaml)")
}
