package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CatoAkay/cf-benchmark/internal/submit"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "cf-benchmark server URL (e.g. https://cfbench.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "ingest API key (or set CFBENCH_API_KEY)")
	resultsPath := flag.String("path", "", "directory of YAML result files")
	athlete := flag.String("athlete", "", "fallback athlete login for files without one")
	dryRun := flag.Bool("dry-run", false, "parse and validate but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("cfbench-submit", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *resultsPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: cfbench-submit -server <URL> -api-key <key> -path <results dir> [-athlete login] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *apiKey == "" {
		*apiKey = os.Getenv("CFBENCH_API_KEY")
	}

	if !*dryRun {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
			os.Exit(1)
		}
		if *apiKey == "" {
			fmt.Fprintf(os.Stderr, "Error: -api-key is required (or use -dry-run)\n")
			os.Exit(1)
		}
	}

	info, err := os.Stat(*resultsPath)
	if err != nil || !info.IsDir() {
		log.Error("results directory not found", "path", *resultsPath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".cfbench-submit")

	state, err := submit.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Create client (nil-safe in dry-run mode)
	var client *submit.Client
	if !*dryRun {
		client = submit.NewClient(*serverURL, *apiKey)
	}

	if *dryRun {
		log.Info("DRY RUN mode, files will be parsed and validated but not sent")
	}

	// Run submission
	submitter := submit.New(client, state, *resultsPath, *athlete, *dryRun, log)
	stats, err := submitter.Run()
	if err != nil {
		log.Error("submission failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("submission complete")
}

func printStats(stats *submit.Stats) {
	fmt.Println()
	fmt.Println("=== Submission Summary ===")
	fmt.Printf("  Files total:      %d\n", stats.FilesTotal)
	fmt.Printf("  Files submitted:  %d\n", stats.FilesSubmitted)
	fmt.Printf("  Files skipped:    %d (already submitted)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)
	fmt.Println()
	fmt.Printf("  Results sent:     %d\n", stats.ResultsSent)
	fmt.Printf("  Results stored:   %d\n", stats.ResultsInserted)
	fmt.Printf("  Results rejected: %d\n", stats.ResultsRejected)

	if len(stats.RejectedDetails) > 0 {
		fmt.Printf("\n  Rejections:\n")
		for _, d := range stats.RejectedDetails {
			fmt.Printf("    - %s\n", d)
		}
	}
	fmt.Println()
}
